package user

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/user/model"
	"cargobike/internal/domains/user/model/dto"
	"cargobike/internal/domains/user/service"
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
	service service.User
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.User, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)
		routerGroup.Get("/{id}", handler.GetUserByID)
	})
}

// GetUserByID returns the profile saved by the user's last reservation.
// @Summary Get a user profile
// @Tags User
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security ApiKeyAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("id must be an integer"))

		return
	}

	user, found, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", id).Msg("failed to get user")

		response.WithError(writer, err)

		return
	}

	if !found {
		response.WithError(writer, failure.NotFound(model.EntityName+" not found"))

		return
	}

	res := dto.ProfileResponse{}
	res.FromModel(user)

	response.WithJSON(writer, http.StatusOK, res)
}
