package model

import (
	userModel "cargobike/internal/domains/user/model"
	"time"
)

type EventKind string

const (
	EventStartReservation  EventKind = "start_reservation"
	EventFieldSelected     EventKind = "field_selected"
	EventDurationChosen    EventKind = "duration_chosen"
	EventBikeChosen        EventKind = "bike_chosen"
	EventPickupTimeChosen  EventKind = "pickup_time_chosen"
	EventTextSubmitted     EventKind = "text_submitted"
	EventValidateRequested EventKind = "validate_requested"
	EventCancelRequested   EventKind = "cancel_requested"
	EventListReservations  EventKind = "list_reservations"
	EventViewReservation   EventKind = "view_reservation"
)

// Event is one user action delivered by the chat platform. Only the payload
// field matching Kind is read.
type Event struct {
	Kind   EventKind
	ChatID int64
	User   userModel.Identity

	Field         Field
	Label         string
	BikeID        int64
	TimestampMs   int64
	Text          string
	ReservationID uint64

	// InputRef is the user's own message carrying Text, removed once consumed.
	InputRef MessageRef
}

type EffectKind string

const (
	EffectShowFieldMenu            EffectKind = "show_field_menu"
	EffectShowDurationOptions      EffectKind = "show_duration_options"
	EffectShowBikeOptions          EffectKind = "show_bike_options"
	EffectPromptFreeText           EffectKind = "prompt_free_text"
	EffectPromptPickupTime         EffectKind = "prompt_pickup_time"
	EffectShowMissingFieldsWarning EffectKind = "show_missing_fields_warning"
	EffectShowCommitted            EffectKind = "show_committed"
	EffectShowCancelled            EffectKind = "show_cancelled"
	EffectShowReservationList      EffectKind = "show_reservation_list"
	EffectShowReservationDetails   EffectKind = "show_reservation_details"
	EffectShowError                EffectKind = "show_error"
)

type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// WebApp is a button opening an external page whose result comes back as an event.
type WebApp struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Effect is something to render in the chat. A non empty Edit replaces that
// message instead of sending a new one.
type Effect struct {
	Kind         EffectKind    `json:"kind"`
	Text         string        `json:"text"`
	HTML         bool          `json:"html,omitempty"`
	Buttons      []Button      `json:"buttons,omitempty"`
	WebApp       *WebApp       `json:"web_app,omitempty"`
	Edit         MessageRef    `json:"edit,omitempty"`
	Missing      []Field       `json:"missing,omitempty"`
	DismissAfter time.Duration `json:"-"`
}
