package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	EntityName = "reservation"

	FieldID     = "reservation_id"
	FieldUserID = "user_id"
	FieldStatus = "status"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

var errEndNotAfterStart = errors.New("end_datetime must be after start_datetime")

// Reservation is append-only. Names and contact details are copied from the
// user at creation time and never follow later profile changes.
type Reservation struct {
	ID          uint64    `csv:"reservation_id,primary"`
	UserID      int64     `csv:"user_id"`
	Username    string    `csv:"username"`
	FirstName   string    `csv:"first_name"`
	LastName    string    `csv:"last_name"`
	Association string    `csv:"association_name"`
	Email       string    `csv:"email"`
	BikeID      int64     `csv:"bike_id"`
	Start       time.Time `csv:"start_datetime"`
	End         time.Time `csv:"end_datetime"`
	Status      Status    `csv:"status"`
}

func (r Reservation) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("unknown status %q", r.Status)
	}

	if !r.End.After(r.Start) {
		return errEndNotAfterStart
	}

	return nil
}
