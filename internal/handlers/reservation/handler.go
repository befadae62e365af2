package reservation

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	"cargobike/internal/domains/reservation/service"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/transport/http/middleware"
	"cargobike/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Reservation, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
	})
}

// GetReservations lists reservations in file order, optionally for one user.
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param user_id query int false "Only this user's reservations"
// @Success 200 {object} dto.GetReservationsResponse
// @Failure 400 {object} response.Error
// @Router /v1/reservations [get]
// @Security ApiKeyAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	var userID *int64

	if raw := request.URL.Query().Get(constant.RequestParamUserID); raw != constant.Empty {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("user_id must be an integer"))

			return
		}

		userID = &id
	}

	reservations, err := handler.service.GetAll(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	res := dto.GetReservationsResponse{}
	res.FromModels(reservations)

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservationByID
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := strconv.ParseUint(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an unsigned integer"))

		return
	}

	reservation, found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Uint64("reservation_id", id).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	if !found {
		response.WithError(writer, failure.NotFound(model.EntityName+" not found"))

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	response.WithJSON(writer, http.StatusOK, res)
}
