package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"cargobike/config"
	"cargobike/infras/csvstore"
	"cargobike/infras/otel"
	"cargobike/internal/domains/user/model"
	gRepo "cargobike/shared/repository"
	"context"
	"path/filepath"
)

type User interface {
	Initialize(ctx context.Context) error
	Insert(ctx context.Context, user model.User) error
	Get(ctx context.Context, id any) (model.User, bool, error)
	GetAll(ctx context.Context, filter func(model.User) bool) ([]model.User, error)
	Update(ctx context.Context, id any, update func(model.User) model.User) (bool, error)
	Store() *csvstore.Store
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(cfg *config.Config, otel otel.Otel) User {
	path := filepath.Join(cfg.Storage.Dir, cfg.Storage.UsersFile)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, path, otel),
	}
}
