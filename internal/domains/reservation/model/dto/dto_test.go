package dto_test

import (
	"cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	userModel "cargobike/internal/domains/user/model"
	"cargobike/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitRequest_ToModel(t *testing.T) {
	req := dto.CommitRequest{
		User:        userModel.Identity{ID: 7, Username: "jane"},
		Association: "Velo",
		Email:       "jane@example.org",
		BikeID:      2,
		Start:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Duration:    "3 hours",
	}

	res, err := req.ToModel(42)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), res.ID)
	assert.Equal(t, time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC), res.End)
	assert.Equal(t, model.StatusAccepted, res.Status)
	assert.Equal(t, userModel.User{ID: 7, Username: "jane", Association: "Velo", Email: "jane@example.org"}, req.ToUser())
}

func TestListLabelAndDetails(t *testing.T) {
	timezone.Init("UTC")

	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	reservation := model.Reservation{ID: 12, UserID: 7, BikeID: 2, Start: start, End: start.Add(time.Hour), Status: model.StatusAccepted}

	assert.Equal(t, "Reservation 2 - 05/03/2024 (accepted)", dto.ListLabel(2, reservation))

	var res dto.ReservationResponse
	res.FromModel(reservation)

	assert.Contains(t, res.Details(), "reservation_id: 12\n")
	assert.Contains(t, res.Details(), "start_datetime: 2024-03-05 09:00:00\n")
	assert.Contains(t, res.Details(), "status: accepted")
}
