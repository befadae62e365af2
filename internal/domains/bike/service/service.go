package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Bike=MockBikeService

import (
	"cargobike/config"
	"cargobike/infras/otel"
	"cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/bike/model/dto"
	"cargobike/internal/domains/bike/repository"
	"cargobike/shared"
	"cargobike/shared/cache"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBike = "bike:gets"
)

type Bike interface {
	Create(ctx context.Context, req dto.CreateBikeRequest) error
	GetAll(ctx context.Context) (dto.GetBikesResponse, error)
	Get(ctx context.Context, id int64) (model.Bike, bool, error)
}

type serviceImpl struct {
	repo  repository.Bike
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Bike, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Bike {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBikeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bike.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check bike existence")

		return fmt.Errorf("failed to check bike existence: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("bike %d already exists", req.ID)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to insert bike")

		return fmt.Errorf("failed to insert bike: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBike)
	}()

	return nil
}

// GetAll lists the fleet in file order. The listing is cached since every
// bike prompt of the reservation form renders it.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBikesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bike.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAllBike)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bikes")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bikes")

		return res, fmt.Errorf("failed to get bikes: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bikes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Bike, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".bike.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, found, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("bike_id", id).Msg("failed to get bike")

		return res, false, fmt.Errorf("failed to get bike: %w", err)
	}

	return res, found, nil
}
