package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cargobike/config"
	"cargobike/infras/otel/mocks"
	s3Mocks "cargobike/infras/s3/mocks"
	"cargobike/internal/domains/backup/service"
	bikeModel "cargobike/internal/domains/bike/model"
	bikeRepo "cargobike/internal/domains/bike/repository"
	reservationRepo "cargobike/internal/domains/reservation/repository"
	userRepo "cargobike/internal/domains/user/repository"
)

func newService(t *testing.T) (service.Backup, *s3Mocks.MockS3) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.BikesFile = "bikes.csv"
	cfg.Storage.UsersFile = "users.csv"
	cfg.Storage.ReservationsFile = "reservations.csv"

	otl := mocks.NewOtel()
	ctx := context.Background()

	bikes := bikeRepo.New(cfg, otl)
	require.NoError(t, bikes.Initialize(ctx))
	require.NoError(t, bikes.Insert(ctx, bikeModel.Bike{ID: 1, Size: "L", Name: "Long John"}))

	users := userRepo.New(cfg, otl)
	require.NoError(t, users.Initialize(ctx))

	reservations := reservationRepo.New(cfg, otl)
	require.NoError(t, reservations.Initialize(ctx))

	storage := s3Mocks.NewMockS3(gomock.NewController(t))

	svc := service.New(bikes, users, reservations, storage, otl)
	service.SetClock(svc, func() string { return "20240101-100000" })

	return svc, storage
}

func TestCreate(t *testing.T) {
	svc, storage := newService(t)
	dir := "backups/20240101-100000"

	gomock.InOrder(
		storage.EXPECT().
			UploadFileBytes(gomock.Any(), dir, "bikes.csv", "text/csv", []byte("bike_id,size,name\n1,L,Long John\n")).
			Return(dir+"/bikes.csv", nil),
		storage.EXPECT().
			UploadFileBytes(gomock.Any(), dir, "users.csv", "text/csv", gomock.Any()).
			Return(dir+"/users.csv", nil),
		storage.EXPECT().
			UploadFileBytes(gomock.Any(), dir, "reservations.csv", "text/csv", gomock.Any()).
			Return(dir+"/reservations.csv", nil),
	)

	res, err := svc.Create(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dir, res.Directory)
	assert.Equal(t, []string{"bikes.csv", "users.csv", "reservations.csv"}, res.Files)
}

func TestCreate_FailureRemovesPartialBackup(t *testing.T) {
	svc, storage := newService(t)
	dir := "backups/20240101-100000"

	gomock.InOrder(
		storage.EXPECT().UploadFileBytes(gomock.Any(), dir, "bikes.csv", "text/csv", gomock.Any()).Return(dir+"/bikes.csv", nil),
		storage.EXPECT().UploadFileBytes(gomock.Any(), dir, "users.csv", "text/csv", gomock.Any()).Return("", errors.New("quota exceeded")),
		storage.EXPECT().DeleteFile(gomock.Any(), dir, "bikes.csv").Return(nil),
	)

	res, err := svc.Create(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, res.Files)
}
