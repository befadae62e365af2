package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"cargobike/config"
	"cargobike/infras/kafka"
	"cargobike/infras/otel"
	"cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	"cargobike/internal/domains/reservation/repository"
	userService "cargobike/internal/domains/user/service"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/shared/validator"
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

const maxIDAttempts = 3

type Reservation interface {
	Commit(ctx context.Context, req dto.CommitRequest) (model.Reservation, error)
	Get(ctx context.Context, id uint64) (model.Reservation, bool, error)
	GetAll(ctx context.Context, userID *int64) ([]model.Reservation, error)
}

type serviceImpl struct {
	repo   repository.Reservation
	users  userService.User
	kafka  kafka.Client
	cfg    *config.Config
	otel   otel.Otel
	nextID func() uint64
}

func New(repo repository.Reservation, users userService.User, kafka kafka.Client, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:   repo,
		users:  users,
		kafka:  kafka,
		cfg:    cfg,
		otel:   otel,
		nextID: model.NewID,
	}
}

// Commit appends the reservation as accepted, then upserts the user's profile.
func (s *serviceImpl) Commit(ctx context.Context, req dto.CommitRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Commit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	id, err := s.newID(ctx)
	if err != nil {
		return res, err
	}

	res, err = req.ToModel(id)
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, res); err != nil {
		log.Error().Err(err).Int64("user_id", req.User.ID).Msg("failed to insert reservation")

		return model.Reservation{}, fmt.Errorf("failed to insert reservation: %w", err)
	}

	// The reservation is stored at this point; a stale profile only affects prefill.
	if _, profileErr := s.users.Upsert(ctx, req.ToUser()); profileErr != nil {
		log.Error().Err(profileErr).Uint64("reservation_id", res.ID).Int64("user_id", req.User.ID).Msg("failed to save user profile")
	}

	log.Info().Uint64("reservation_id", res.ID).Int64("user_id", res.UserID).Int64("bike_id", res.BikeID).Msg("reservation accepted")

	go s.publishCreated(context.WithoutCancel(ctx), res)

	return res, nil
}

// newID draws ids until one is not already stored.
func (s *serviceImpl) newID(ctx context.Context) (uint64, error) {
	for range maxIDAttempts {
		id := s.nextID()

		exist, err := s.repo.Exist(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to check reservation id")

			return 0, fmt.Errorf("failed to check reservation id: %w", err)
		}

		if !exist {
			return id, nil
		}

		log.Warn().Uint64("reservation_id", id).Msg("reservation id collision")
	}

	return 0, failure.Conflict("could not allocate a unique reservation id") //nolint:wrapcheck
}

func (s *serviceImpl) publishCreated(ctx context.Context, reservation model.Reservation) {
	var event dto.CreatedEvent
	event.FromModel(reservation)

	message := kafka.Message{Key: strconv.FormatUint(reservation.ID, 10), Value: event}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Uint64("reservation_id", reservation.ID).Msg("failed to publish reservation event")
	}
}

func (s *serviceImpl) Get(ctx context.Context, id uint64) (res model.Reservation, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, found, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Uint64("reservation_id", id).Msg("failed to get reservation")

		return res, false, fmt.Errorf("failed to get reservation: %w", err)
	}

	return res, found, nil
}

// GetAll lists reservations in file order, optionally only those of one user.
func (s *serviceImpl) GetAll(ctx context.Context, userID *int64) (res []model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID != nil {
		res, err = s.repo.GetByUser(ctx, *userID)
	} else {
		res, err = s.repo.GetAll(ctx, nil)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}

	return res, nil
}
