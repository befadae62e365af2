package model

import (
	userModel "cargobike/internal/domains/user/model"
	"cargobike/shared/failure"
	"fmt"
	"strings"
	"time"
)

type Field string

const (
	FieldPickupTime  Field = "pickup_time"
	FieldDuration    Field = "duration"
	FieldBike        Field = "bike"
	FieldAssociation Field = "association"
	FieldEmail       Field = "email"
)

// RequiredFields must all be set before a reservation can be committed.
var RequiredFields = []Field{FieldPickupTime, FieldDuration, FieldBike, FieldAssociation, FieldEmail}

type State int

const (
	StateIdle State = iota
	StateChoosingField
	StateChoosePickupTime
	StateChooseDuration
	StateChooseBike
	StateChooseAssociation
	StateChooseEmail
	StateCommitted
	StateCancelled
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateChoosingField:     "choosing_field",
	StateChoosePickupTime:  "choose_pickup_time",
	StateChooseDuration:    "choose_duration",
	StateChooseBike:        "choose_bike",
	StateChooseAssociation: "choose_association",
	StateChooseEmail:       "choose_email",
	StateCommitted:         "committed",
	StateCancelled:         "cancelled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("state(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StateFor is the sub-state that collects field.
func StateFor(field Field) (State, bool) {
	switch field {
	case FieldPickupTime:
		return StateChoosePickupTime, true
	case FieldDuration:
		return StateChooseDuration, true
	case FieldBike:
		return StateChooseBike, true
	case FieldAssociation:
		return StateChooseAssociation, true
	case FieldEmail:
		return StateChooseEmail, true
	default:
		return StateIdle, false
	}
}

// MessageRef identifies a message previously sent to the chat.
type MessageRef string

// Session is the scratch state of one user's reservation in progress.
// A nil field has not been chosen yet.
type Session struct {
	User   userModel.Identity `json:"user"`
	ChatID int64              `json:"chat_id"`
	State  State              `json:"state"`

	PickupTime  *time.Time `json:"pickup_time,omitempty"`
	Duration    *string    `json:"duration,omitempty"`
	BikeID      *int64     `json:"bike_id,omitempty"`
	Association *string    `json:"association,omitempty"`
	Email       *string    `json:"email,omitempty"`

	MenuRef   MessageRef `json:"-"`
	PickerRef MessageRef `json:"-"`
}

func (s *Session) Has(field Field) bool {
	switch field {
	case FieldPickupTime:
		return s.PickupTime != nil
	case FieldDuration:
		return s.Duration != nil
	case FieldBike:
		return s.BikeID != nil
	case FieldAssociation:
		return s.Association != nil
	case FieldEmail:
		return s.Email != nil
	default:
		return false
	}
}

// Missing lists the required fields not set yet, in RequiredFields order.
func (s *Session) Missing() []Field {
	var missing []Field

	for _, field := range RequiredFields {
		if !s.Has(field) {
			missing = append(missing, field)
		}
	}

	return missing
}

func (s *Session) Complete() bool {
	return len(s.Missing()) == 0
}

// MissingFieldsError reports a commit attempted on an incomplete form.
type MissingFieldsError struct {
	Fields []Field
}

func (e *MissingFieldsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		names[i] = string(field)
	}

	return "Missing fields: " + strings.Join(names, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return failure.Validation(e.Error())
}
