package di

import (
	"cargobike/config"
	"cargobike/infras/otel"
	bikeRepository "cargobike/internal/domains/bike/repository"
	reservationRepository "cargobike/internal/domains/reservation/repository"
	userRepository "cargobike/internal/domains/user/repository"
	"context"

	"github.com/rs/zerolog/log"
)

type initializer interface {
	Initialize(ctx context.Context) error
}

// mustInitialize creates the record file with its header row when it does not exist yet.
func mustInitialize[T initializer](repo T, name string) T {
	if err := repo.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Str("store", name).Msg("Failed to initialize record store")
	}

	return repo
}

func provideBikeRepository(cfg *config.Config, otel otel.Otel) bikeRepository.Bike {
	return mustInitialize(bikeRepository.New(cfg, otel), cfg.Storage.BikesFile)
}

func provideUserRepository(cfg *config.Config, otel otel.Otel) userRepository.User {
	return mustInitialize(userRepository.New(cfg, otel), cfg.Storage.UsersFile)
}

func provideReservationRepository(cfg *config.Config, otel otel.Otel) reservationRepository.Reservation {
	return mustInitialize(reservationRepository.New(cfg, otel), cfg.Storage.ReservationsFile)
}
