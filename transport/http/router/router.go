package router

import (
	_ "cargobike/docs"
	"cargobike/internal/handlers/backup"
	"cargobike/internal/handlers/bike"
	"cargobike/internal/handlers/chat"
	"cargobike/internal/handlers/reservation"
	"cargobike/internal/handlers/user"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Chat        chat.Handler
	Bike        bike.Handler
	Reservation reservation.Handler
	User        user.Handler
	Backup      backup.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Chat.Router(routerGroup)
		r.DomainHandlers.Bike.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Backup.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
