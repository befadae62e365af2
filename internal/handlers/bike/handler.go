package bike

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/bike/model/dto"
	"cargobike/internal/domains/bike/service"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/shared/validator"
	"cargobike/transport/http/middleware"
	"cargobike/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bike
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Bike, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bikes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBikes)
		routerGroup.Get("/{id}", handler.GetBikeByID)
		routerGroup.With(handler.auth.APIKey).Post("/", handler.CreateBike)
	})
}

// CreateBike adds a bike to the fleet.
// @Summary Add a bike
// @Tags Bike
// @Accept json
// @Produce json
// @Param request body dto.CreateBikeRequest true "Create Bike Request"
// @Success 201 {object} response.Message "Bike created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bikes [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateBike(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBike")
	defer scope.End()

	req := dto.CreateBikeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bike")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Bike created successfully")

	response.WithMessage(writer, http.StatusCreated, "Bike created successfully")
}

// GetBikes lists the fleet in file order.
// @Summary List bikes
// @Tags Bike
// @Produce json
// @Success 200 {object} dto.GetBikesResponse
// @Failure 500 {object} response.Error
// @Router /v1/bikes [get]
func (handler *Handler) GetBikes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBikes")
	defer scope.End()

	bikes, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bikes")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bikes)
}

func (handler *Handler) GetBikeByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBikeByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an integer"))

		return
	}

	bike, found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("bike_id", id).Msg("failed to get bike")

		response.WithError(writer, err)

		return
	}

	if !found {
		response.WithError(writer, failure.NotFound(model.EntityName+" not found"))

		return
	}

	res := dto.BikeResponse{}
	res.FromModel(bike)

	response.WithJSON(writer, http.StatusOK, res)
}
