package dto

import (
	"cargobike/internal/domains/reservation/model"
	userModel "cargobike/internal/domains/user/model"
	"cargobike/shared/constant"
	"cargobike/shared/timezone"
	"cargobike/shared/validator"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CommitRequest carries a completed reservation form.
type CommitRequest struct {
	User        userModel.Identity `json:"user"        validate:"required"`
	Association string             `json:"association" validate:"required"`
	Email       string             `json:"email"       validate:"required"`
	BikeID      int64              `json:"bike_id"     validate:"required"`
	Start       time.Time          `json:"start"       validate:"required"`
	Duration    string             `json:"duration"    validate:"required,duration"`
}

func init() {
	validator.Register("duration", "{field} must read like \"3 hours\"", func(label string) bool {
		_, err := model.ParseDuration(label)

		return err == nil
	})
}

func (c *CommitRequest) ToModel(id uint64) (model.Reservation, error) {
	end, err := model.EndTime(c.Start, c.Duration)
	if err != nil {
		return model.Reservation{}, err //nolint:wrapcheck
	}

	return model.Reservation{
		ID:          id,
		UserID:      c.User.ID,
		Username:    c.User.Username,
		FirstName:   c.User.FirstName,
		LastName:    c.User.LastName,
		Association: c.Association,
		Email:       c.Email,
		BikeID:      c.BikeID,
		Start:       c.Start,
		End:         end,
		Status:      model.StatusAccepted,
	}, nil
}

func (c *CommitRequest) ToUser() userModel.User {
	return userModel.User{
		ID:          c.User.ID,
		Username:    c.User.Username,
		FirstName:   c.User.FirstName,
		LastName:    c.User.LastName,
		Association: c.Association,
		Email:       c.Email,
	}
}

type ReservationResponse struct {
	ID          string       `json:"id"`
	UserID      int64        `json:"user_id"`
	Username    string       `json:"username"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Association string       `json:"association"`
	Email       string       `json:"email"`
	BikeID      int64        `json:"bike_id"`
	Start       string       `json:"start_datetime"`
	End         string       `json:"end_datetime"`
	Status      model.Status `json:"status"`
}

func (r *ReservationResponse) FromModel(reservation model.Reservation) {
	r.ID = strconv.FormatUint(reservation.ID, 10)
	r.UserID = reservation.UserID
	r.Username = reservation.Username
	r.FirstName = reservation.FirstName
	r.LastName = reservation.LastName
	r.Association = reservation.Association
	r.Email = reservation.Email
	r.BikeID = reservation.BikeID
	r.Start = timezone.Format(reservation.Start, constant.DateTimeFormat)
	r.End = timezone.Format(reservation.End, constant.DateTimeFormat)
	r.Status = reservation.Status
}

// Details lists every stored column as "name: value", one per line.
func (r *ReservationResponse) Details() string {
	lines := []string{
		fmt.Sprintf("reservation_id: %s", r.ID),
		fmt.Sprintf("user_id: %d", r.UserID),
		fmt.Sprintf("username: %s", r.Username),
		fmt.Sprintf("first_name: %s", r.FirstName),
		fmt.Sprintf("last_name: %s", r.LastName),
		fmt.Sprintf("association_name: %s", r.Association),
		fmt.Sprintf("email: %s", r.Email),
		fmt.Sprintf("bike_id: %d", r.BikeID),
		fmt.Sprintf("start_datetime: %s", r.Start),
		fmt.Sprintf("end_datetime: %s", r.End),
		fmt.Sprintf("status: %s", r.Status),
	}

	return strings.Join(lines, "\n")
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ListLabel is the button text of the n-th (1-based) reservation of a user.
func ListLabel(n int, reservation model.Reservation) string {
	return fmt.Sprintf("Reservation %d - %s (%s)", n, timezone.Format(reservation.Start, constant.DisplayListDate), reservation.Status)
}

// CreatedEvent is published once a reservation has been persisted.
type CreatedEvent struct {
	ReservationID string       `json:"reservation_id"`
	UserID        int64        `json:"user_id"`
	BikeID        int64        `json:"bike_id"`
	Start         string       `json:"start_datetime"`
	End           string       `json:"end_datetime"`
	Status        model.Status `json:"status"`
	CreatedAt     string       `json:"created_at"`
}

func (e *CreatedEvent) FromModel(reservation model.Reservation) {
	e.ReservationID = strconv.FormatUint(reservation.ID, 10)
	e.UserID = reservation.UserID
	e.BikeID = reservation.BikeID
	e.Start = timezone.Format(reservation.Start, constant.DateTimeFormat)
	e.End = timezone.Format(reservation.End, constant.DateTimeFormat)
	e.Status = reservation.Status
	e.CreatedAt = time.Now().In(timezone.GetLocation()).Format(constant.DateTimeISOFormat)
}
