package middleware

import (
	"cargobike/config"
	"cargobike/infras/otel"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/transport/http/response"
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Auth guards the endpoints only the gateway and operators may call.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	if cfg.App.APIKey == constant.Empty {
		log.Warn().Msg("No API key configured, protected endpoints are open")
	}

	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey compares the X-API-Key header with the configured key. Without a
// configured key every request passes.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		expected := m.cfg.App.APIKey
		if expected == constant.Empty {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == constant.Empty {
			err := failure.Unauthorized("Missing API key")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
