package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cargobike/config"
	"cargobike/infras/otel/mocks"
	bikeMocks "cargobike/internal/domains/bike/mocks"
	"cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/bike/model/dto"
	"cargobike/internal/domains/bike/service"
	cacheMocks "cargobike/shared/cache/mocks"
	"cargobike/shared/failure"
)

func TestBikeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bikeMocks.NewMockBike(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.CreateBikeRequest{ID: 3, Size: "L", Name: "Long John"}

	tests := []struct {
		name         string
		setupMock    func()
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), int64(3)).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), model.Bike{ID: 3, Size: "L", Name: "Long John"}).Return(nil)
				mockCache.EXPECT().Clear(gomock.Any(), "bike:gets").Return(nil).AnyTimes()
			},
		},
		{
			name: "duplicate id",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), int64(3)).Return(true, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "storage error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), int64(3)).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.StorageUnavailable(errors.New("disk full")))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantConflict {
				assert.Equal(t, 409, failure.GetCode(err))
			}
		})
	}
}

func TestBikeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bikeMocks.NewMockBike(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	bikes := []model.Bike{
		{ID: 1, Size: "L", Name: "Long John"},
		{ID: 2, Size: "M", Name: "Bakfiets"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "bike:gets", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.GetBikesResponse)
						res.FromModels(bikes[:1])

						return nil
					})
			},
			wantTotal: 1,
		},
		{
			name: "cache miss reads the store",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "bike:gets", gomock.Any()).Return(errors.New("redis: nil"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(bikes, nil)
				mockCache.EXPECT().Save(gomock.Any(), "bike:gets", gomock.Any(), 3600).Return(nil).AnyTimes()
			},
			wantTotal: 2,
		},
		{
			name: "store error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "bike:gets", gomock.Any()).Return(errors.New("redis: nil"))
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(nil, failure.MalformedRecord("bikes.csv: line 3"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsMalformedRecord(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalData)
				assert.Len(t, res.Bikes, tt.wantTotal)
				assert.Equal(t, "1 - Long John (L)", res.Bikes[0].Label)
			}
		})
	}
}

func TestBikeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bikeMocks.NewMockBike(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), int64(1)).Return(model.Bike{ID: 1, Name: "Long John"}, true, nil)
	mockRepo.EXPECT().Get(gomock.Any(), int64(2)).Return(model.Bike{}, false, nil)

	bike, found, err := svc.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Long John", bike.Name)

	_, found, err = svc.Get(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, found)
}
