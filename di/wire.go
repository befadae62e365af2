//go:build wireinject
// +build wireinject

package di

import (
	"cargobike/config"
	"cargobike/infras/gateway"
	"cargobike/infras/kafka"
	"cargobike/infras/otel"
	"cargobike/infras/redis"
	"cargobike/infras/s3"
	"cargobike/shared/cache"
	"cargobike/transport/http"
	"cargobike/transport/http/middleware"
	"cargobike/transport/http/router"

	backupService "cargobike/internal/domains/backup/service"
	bikeService "cargobike/internal/domains/bike/service"
	formModel "cargobike/internal/domains/form/model"
	formService "cargobike/internal/domains/form/service"
	reservationService "cargobike/internal/domains/reservation/service"
	userService "cargobike/internal/domains/user/service"

	"github.com/google/wire"

	backupHandler "cargobike/internal/handlers/backup"
	bikeHandler "cargobike/internal/handlers/bike"
	chatHandler "cargobike/internal/handlers/chat"
	reservationHandler "cargobike/internal/handlers/reservation"
	userHandler "cargobike/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
	gateway.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bikeDomain = wire.NewSet(
	provideBikeRepository,
	bikeService.New,
)

var userDomain = wire.NewSet(
	provideUserRepository,
	userService.New,
)

var reservationDomain = wire.NewSet(
	provideReservationRepository,
	reservationService.New,
)

var formDomain = wire.NewSet(
	formModel.NewRegistry,
	formService.NewPresenter,
	formService.New,
)

var backupDomain = wire.NewSet(
	backupService.New,
)

var domains = wire.NewSet(
	bikeDomain,
	userDomain,
	reservationDomain,
	formDomain,
	backupDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	chatHandler.New,
	bikeHandler.New,
	reservationHandler.New,
	userHandler.New,
	backupHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
