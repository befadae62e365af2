package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/user/model"
	"cargobike/internal/domains/user/repository"
	"cargobike/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type User interface {
	Get(ctx context.Context, id int64) (model.User, bool, error)
	Upsert(ctx context.Context, user model.User) (created bool, err error)
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.User, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, found, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("user_id", id).Msg("failed to get user")

		return res, false, fmt.Errorf("failed to get user: %w", err)
	}

	return res, found, nil
}

// Upsert inserts the profile on first use, otherwise overwrites the stored
// names and contact details in place.
func (s *serviceImpl) Upsert(ctx context.Context, user model.User) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, found, err := s.repo.Get(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to get user")

		return false, fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		if err = s.repo.Insert(ctx, user); err != nil {
			log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to insert user")

			return false, fmt.Errorf("failed to insert user: %w", err)
		}

		return true, nil
	}

	_, err = s.repo.Update(ctx, user.ID, func(stored model.User) model.User {
		stored.Overwrite(user)

		return stored
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to update user")

		return false, fmt.Errorf("failed to update user: %w", err)
	}

	return false, nil
}
