package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cargobike/config"
	"cargobike/infras/otel/mocks"
	formMocks "cargobike/internal/domains/form/mocks"
	"cargobike/internal/domains/form/model"
	"cargobike/internal/handlers/chat"
	"cargobike/shared/cache"
	cacheMocks "cargobike/shared/cache/mocks"
	"cargobike/shared/failure"
	"cargobike/transport/http/middleware"
)

const startBody = `{"kind":"start_reservation","user":{"id":7,"username":"jane"}}`

func newRouter(cfg *config.Config, form *formMocks.MockFormService, limiterCache cache.RedisCache) chi.Router {
	otl := mocks.NewOtel()

	handler := chat.New(form, middleware.NewAuthMiddleware(otl, cfg), middleware.NewAppMiddleware(otl, cfg, limiterCache), otl)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func post(router chi.Router, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))

	return recorder
}

func TestHandleEvent(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		mock     func(form *formMocks.MockFormService)
		wantCode int
		check    func(t *testing.T, body map[string]any)
	}{
		{
			name: "event is handed to the form",
			path: "/chats/42/events",
			body: startBody,
			mock: func(form *formMocks.MockFormService) {
				form.EXPECT().
					Handle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event model.Event) (model.Session, error) {
						assert.Equal(t, model.EventStartReservation, event.Kind)
						assert.Equal(t, int64(42), event.ChatID)
						assert.Equal(t, int64(7), event.User.ID)

						return model.Session{State: model.StateChoosingField}, nil
					})
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				data, ok := body["data"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "choosing_field", data["state"])
			},
		},
		{
			name:     "chat id must be numeric",
			path:     "/chats/abc/events",
			body:     startBody,
			mock:     func(_ *formMocks.MockFormService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown event kind",
			path:     "/chats/42/events",
			body:     `{"kind":"dance","user":{"id":7}}`,
			mock:     func(_ *formMocks.MockFormService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "view without reservation id",
			path:     "/chats/42/events",
			body:     `{"kind":"view_reservation","user":{"id":7}}`,
			mock:     func(_ *formMocks.MockFormService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "input the form does not expect",
			path: "/chats/42/events",
			body: `{"kind":"duration_chosen","user":{"id":7},"label":"1 hour"}`,
			mock: func(form *formMocks.MockFormService) {
				form.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(model.Session{State: model.StateChoosingField}, failure.UnexpectedInputError)
			},
			wantCode: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, failure.UnexpectedInputError.Error(), body["error"])
			},
		},
		{
			name: "no form in progress",
			path: "/chats/42/events",
			body: `{"kind":"cancel_requested","user":{"id":7}}`,
			mock: func(form *formMocks.MockFormService) {
				form.EXPECT().Handle(gomock.Any(), gomock.Any()).Return(model.Session{}, failure.NoActiveSessionError)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "storage down",
			path: "/chats/42/events",
			body: `{"kind":"validate_requested","user":{"id":7}}`,
			mock: func(form *formMocks.MockFormService) {
				form.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(model.Session{State: model.StateChoosingField}, failure.StorageUnavailable(errors.New("disk full")))
			},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := formMocks.NewMockFormService(gomock.NewController(t))
			tt.mock(form)

			recorder := post(newRouter(&config.Config{}, form, cache.NewNoopCache()), tt.path, tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.check != nil {
				var body map[string]any
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				tt.check(t, body)
			}
		})
	}
}

func TestHandleEvent_RateLimitedPerChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	form := formMocks.NewMockFormService(ctrl)
	limiterCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 1
	cfg.App.RateLimiter.WindowSeconds = 60

	limiterCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, value any) error {
			assert.Contains(t, key, "42")

			*value.(*int) = 1

			return nil
		})

	recorder := post(newRouter(cfg, form, limiterCache), "/chats/42/events", startBody)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
}
