package chat

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/form/model/dto"
	"cargobike/internal/domains/form/service"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/shared/validator"
	"cargobike/transport/http/middleware"
	"cargobike/transport/http/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Form
	auth       middleware.Auth
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Form, auth middleware.Auth, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		auth:       auth,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chats", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.APIKey)
		routerGroup.With(handler.middleware.RateLimit()).Post("/{chat_id}/events", handler.HandleEvent)
	})
}

// HandleEvent feeds one user action from the gateway into the reservation form.
// @Summary Deliver a chat event
// @Tags Chat
// @Accept json
// @Produce json
// @Param chat_id path int true "Chat ID"
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/chats/{chat_id}/events [post]
func (handler *Handler) HandleEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HandleEvent")
	defer scope.End()

	chatID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamChatID), 10, 64)
	if err != nil {
		err = failure.BadRequestFromString("chat_id must be an integer")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.EventRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate event body")

		response.WithError(writer, err)

		return
	}

	event, err := req.ToEvent(chatID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	session, err := handler.service.Handle(ctx, event)
	if err != nil {
		scope.TraceError(err)

		if !errors.Is(err, failure.UnexpectedInputError) && !failure.IsValidation(err) {
			log.Error().Err(err).Int64("chat_id", chatID).Str("kind", req.Kind).Msg("failed to handle chat event")
		}

		response.WithError(writer, err)

		return
	}

	res := dto.EventResponse{}
	res.FromSession(session)

	scope.AddEvent("Chat event handled")

	response.WithJSON(writer, http.StatusOK, res)
}
