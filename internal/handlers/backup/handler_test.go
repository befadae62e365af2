package backup_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cargobike/config"
	"cargobike/infras/otel/mocks"
	backupMocks "cargobike/internal/domains/backup/mocks"
	"cargobike/internal/domains/backup/model/dto"
	"cargobike/internal/handlers/backup"
	"cargobike/shared/failure"
	"cargobike/transport/http/middleware"
)

func TestCreateBackup(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		mock     func(svc *backupMocks.MockBackupService)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			key:  "secret",
			mock: func(svc *backupMocks.MockBackupService) {
				svc.EXPECT().Create(gomock.Any()).Return(dto.BackupResponse{
					Directory: "backups/20240101-100000",
					Files:     []string{"bikes.csv", "users.csv", "reservations.csv"},
				}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `{"data":{"directory":"backups/20240101-100000","files":["bikes.csv","users.csv","reservations.csv"]}}`,
		},
		{
			name: "object storage missing",
			key:  "secret",
			mock: func(svc *backupMocks.MockBackupService) {
				svc.EXPECT().Create(gomock.Any()).Return(dto.BackupResponse{}, failure.StorageUnavailable(errors.New("object storage is not configured")))
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "wrong key",
			key:      "guess",
			mock:     func(_ *backupMocks.MockBackupService) {},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := backupMocks.NewMockBackupService(gomock.NewController(t))
			tt.mock(svc)

			cfg := &config.Config{}
			cfg.App.APIKey = "secret"

			otl := mocks.NewOtel()
			handler := backup.New(svc, middleware.NewAuthMiddleware(otl, cfg), otl)

			router := chi.NewRouter()
			handler.Router(router)

			request := httptest.NewRequest(http.MethodPost, "/backups", nil)
			request.Header.Set("X-API-Key", tt.key)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
