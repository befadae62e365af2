package backup

import (
	"cargobike/infras/otel"
	"cargobike/internal/domains/backup/service"
	"cargobike/shared/constant"
	"cargobike/transport/http/middleware"
	"cargobike/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Backup
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Backup, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.With(handler.auth.APIKey).Post("/backups", handler.CreateBackup)
}

// CreateBackup copies the record files to object storage.
// @Summary Back up the record files
// @Tags Backup
// @Produce json
// @Success 201 {object} dto.BackupResponse
// @Failure 503 {object} response.Error
// @Router /v1/backups [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateBackup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBackup")
	defer scope.End()

	res, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create backup")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Backup created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}
