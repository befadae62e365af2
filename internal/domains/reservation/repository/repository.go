package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cargobike/config"
	"cargobike/infras/csvstore"
	"cargobike/infras/otel"
	"cargobike/internal/domains/reservation/model"
	gRepo "cargobike/shared/repository"
	"context"
	"path/filepath"
)

type Reservation interface {
	Initialize(ctx context.Context) error
	Insert(ctx context.Context, reservation model.Reservation) error
	Get(ctx context.Context, id any) (model.Reservation, bool, error)
	GetAll(ctx context.Context, filter func(model.Reservation) bool) ([]model.Reservation, error)
	Exist(ctx context.Context, id any) (bool, error)
	GetByUser(ctx context.Context, userID int64) ([]model.Reservation, error)
	Store() *csvstore.Store
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(cfg *config.Config, otel otel.Otel) Reservation {
	path := filepath.Join(cfg.Storage.Dir, cfg.Storage.ReservationsFile)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, path, otel),
	}
}

func (r *repositoryImpl) GetByUser(ctx context.Context, userID int64) ([]model.Reservation, error) {
	return r.GetAll(ctx, func(reservation model.Reservation) bool { //nolint:wrapcheck
		return reservation.UserID == userID
	})
}
