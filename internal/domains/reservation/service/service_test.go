package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cargobike/config"
	"cargobike/infras/kafka"
	kafkaMocks "cargobike/infras/kafka/mocks"
	"cargobike/infras/otel/mocks"
	reservationMocks "cargobike/internal/domains/reservation/mocks"
	"cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	"cargobike/internal/domains/reservation/service"
	userMocks "cargobike/internal/domains/user/mocks"
	userModel "cargobike/internal/domains/user/model"
	"cargobike/shared/failure"
)

func commitRequest() dto.CommitRequest {
	return dto.CommitRequest{
		User:        userModel.Identity{ID: 7, Username: "jane", FirstName: "Jane", LastName: "Doe"},
		Association: "Velo Club",
		Email:       "jane@example.org",
		BikeID:      2,
		Start:       time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Duration:    "30 minutes",
	}
}

type fixture struct {
	repo  *reservationMocks.MockReservation
	users *userMocks.MockUserService
	kafka *kafkaMocks.MockClient
	svc   service.Reservation
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topic = "reservations"

	f := fixture{
		repo:  reservationMocks.NewMockReservation(ctrl),
		users: userMocks.NewMockUserService(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}
	f.svc = service.New(f.repo, f.users, f.kafka, cfg, mocks.NewOtel())

	return f
}

func TestReservationService_Commit(t *testing.T) {
	f := newFixture(t)
	service.SetIDGenerator(f.svc, func() uint64 { return 99 })

	var published sync.WaitGroup
	published.Add(1)

	gomock.InOrder(
		f.repo.EXPECT().Exist(gomock.Any(), uint64(99)).Return(false, nil),
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Reservation) error {
			assert.Equal(t, uint64(99), r.ID)
			assert.Equal(t, model.StatusAccepted, r.Status)
			assert.Equal(t, "2024-01-01 10:30:00", r.End.Format("2006-01-02 15:04:05"))

			return nil
		}),
		f.users.EXPECT().Upsert(gomock.Any(), userModel.User{
			ID: 7, Username: "jane", FirstName: "Jane", LastName: "Doe", Association: "Velo Club", Email: "jane@example.org",
		}).Return(true, nil),
	)

	f.kafka.EXPECT().SendMessages(gomock.Any(), "reservations", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
			published.Done()

			return nil
		})

	res, err := f.svc.Commit(context.Background(), commitRequest())

	require.NoError(t, err)
	assert.Equal(t, uint64(99), res.ID)
	assert.Equal(t, "Velo Club", res.Association)

	published.Wait()
}

func TestReservationService_CommitRetriesCollidingIDs(t *testing.T) {
	f := newFixture(t)

	ids := []uint64{1, 2}
	service.SetIDGenerator(f.svc, func() uint64 {
		id := ids[0]
		ids = ids[1:]

		return id
	})

	f.repo.EXPECT().Exist(gomock.Any(), uint64(1)).Return(true, nil)
	f.repo.EXPECT().Exist(gomock.Any(), uint64(2)).Return(false, nil)
	f.users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.Commit(context.Background(), commitRequest())

	require.NoError(t, err)
	assert.Equal(t, uint64(2), res.ID)
}

func TestReservationService_CommitFailures(t *testing.T) {
	tests := []struct {
		name      string
		req       func() dto.CommitRequest
		setupMock func(f fixture)
		check     func(t *testing.T, err error)
	}{
		{
			name: "missing email is a validation error",
			req: func() dto.CommitRequest {
				req := commitRequest()
				req.Email = ""

				return req
			},
			setupMock: func(_ fixture) {},
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsValidation(err))
			},
		},
		{
			name: "unparsable duration is a validation error",
			req: func() dto.CommitRequest {
				req := commitRequest()
				req.Duration = "soon"

				return req
			},
			setupMock: func(_ fixture) {},
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsValidation(err))
			},
		},
		{
			name: "every id collides",
			req:  commitRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
			},
			check: func(t *testing.T, err error) {
				assert.Equal(t, 409, failure.GetCode(err))
			},
		},
		{
			name: "reservation write fails and the profile is left alone",
			req:  commitRequest,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.StorageUnavailable(errors.New("read-only")))
				f.users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
			},
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsStorageUnavailable(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Commit(context.Background(), tt.req())

			require.Error(t, err)
			assert.Zero(t, res.ID)
			tt.check(t, err)
		})
	}
}

func TestReservationService_CommitKeepsReservationWhenProfileWriteFails(t *testing.T) {
	f := newFixture(t)
	service.SetIDGenerator(f.svc, func() uint64 { return 5 })

	var published sync.WaitGroup
	published.Add(1)

	gomock.InOrder(
		f.repo.EXPECT().Exist(gomock.Any(), uint64(5)).Return(false, nil),
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil),
		f.users.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(false, failure.StorageUnavailable(errors.New("read-only"))),
	)

	f.kafka.EXPECT().SendMessages(gomock.Any(), "reservations", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
			published.Done()

			return nil
		})

	res, err := f.svc.Commit(context.Background(), commitRequest())

	require.NoError(t, err)
	assert.Equal(t, uint64(5), res.ID)

	published.Wait()
}

func TestReservationService_GetAll(t *testing.T) {
	f := newFixture(t)
	userID := int64(7)

	f.repo.EXPECT().GetByUser(gomock.Any(), userID).Return([]model.Reservation{{ID: 1, UserID: 7}}, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Nil()).Return([]model.Reservation{{ID: 1, UserID: 7}, {ID: 2, UserID: 8}}, nil)

	mine, err := f.svc.GetAll(context.Background(), &userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := f.svc.GetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), uint64(5)).Return(model.Reservation{}, false, failure.MalformedRecord("reservations.csv: line 4"))

	_, found, err := f.svc.Get(context.Background(), 5)

	assert.False(t, found)
	assert.True(t, failure.IsMalformedRecord(err))
}
