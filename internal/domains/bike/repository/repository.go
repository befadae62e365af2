package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cargobike/config"
	"cargobike/infras/csvstore"
	"cargobike/infras/otel"
	"cargobike/internal/domains/bike/model"
	gRepo "cargobike/shared/repository"
	"context"
	"path/filepath"
)

type Bike interface {
	Initialize(ctx context.Context) error
	Insert(ctx context.Context, bike model.Bike) error
	Get(ctx context.Context, id any) (model.Bike, bool, error)
	GetAll(ctx context.Context, filter func(model.Bike) bool) ([]model.Bike, error)
	Exist(ctx context.Context, id any) (bool, error)
	Store() *csvstore.Store
}

type repositoryImpl struct {
	gRepo.Repository[model.Bike]
}

func New(cfg *config.Config, otel otel.Otel) Bike {
	path := filepath.Join(cfg.Storage.Dir, cfg.Storage.BikesFile)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bike](model.EntityName, path, otel),
	}
}
