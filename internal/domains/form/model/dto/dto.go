package dto

import (
	"cargobike/internal/domains/form/model"
	userModel "cargobike/internal/domains/user/model"
	"cargobike/shared/failure"
	"fmt"
	"strconv"
)

// EventRequest is the webhook body the chat gateway posts for every user action.
type EventRequest struct {
	Kind          string             `json:"kind"           validate:"required,oneof=start_reservation field_selected duration_chosen bike_chosen pickup_time_chosen text_submitted validate_requested cancel_requested list_reservations view_reservation"`
	User          userModel.Identity `json:"user"           validate:"required"`
	Field         string             `json:"field"          validate:"required_if=Kind field_selected"`
	Label         string             `json:"label"          validate:"required_if=Kind duration_chosen"`
	BikeID        int64              `json:"bike_id"        validate:"required_if=Kind bike_chosen"`
	TimestampMs   int64              `json:"timestamp_ms"   validate:"required_if=Kind pickup_time_chosen"`
	Text          string             `json:"text"           validate:"required_if=Kind text_submitted"`
	ReservationID string             `json:"reservation_id" validate:"required_if=Kind view_reservation"`
	MessageRef    string             `json:"message_ref"`
}

func (r *EventRequest) ToEvent(chatID int64) (model.Event, error) {
	event := model.Event{
		Kind:        model.EventKind(r.Kind),
		ChatID:      chatID,
		User:        r.User,
		Field:       model.Field(r.Field),
		Label:       r.Label,
		BikeID:      r.BikeID,
		TimestampMs: r.TimestampMs,
		Text:        r.Text,
		InputRef:    model.MessageRef(r.MessageRef),
	}

	if r.ReservationID != "" {
		id, err := strconv.ParseUint(r.ReservationID, 10, 64)
		if err != nil {
			return event, failure.BadRequestFromString(fmt.Sprintf("reservation_id %q is not a reservation id", r.ReservationID)) //nolint:wrapcheck
		}

		event.ReservationID = id
	}

	return event, nil
}

// EventResponse tells the gateway where the conversation stands after an event.
type EventResponse struct {
	State   model.State `json:"state"`
	Missing []string    `json:"missing,omitempty"`
}

func (r *EventResponse) FromSession(session model.Session) {
	r.State = session.State

	for _, field := range session.Missing() {
		r.Missing = append(r.Missing, string(field))
	}
}
