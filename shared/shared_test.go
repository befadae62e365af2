package shared_test

import (
	"cargobike/shared"
	cacheMocks "cargobike/shared/cache/mocks"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "bike:gets",
			expected: "bike:gets",
		},
		{
			name:     "with int part",
			prefix:   "bike:get",
			parts:    []any{int64(7)},
			expected: "bike:get:7",
		},
		{
			name:     "with several parts",
			prefix:   "limiter",
			parts:    []any{"127.0.0.1", "curl"},
			expected: "limiter:127.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "bike:gets").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "bike:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "bike:gets").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "bike:gets")
}

func TestValueOr(t *testing.T) {
	value := "Long John"

	assert.Equal(t, "Long John", shared.ValueOr(&value, "Not set"))
	assert.Equal(t, "Not set", shared.ValueOr[string](nil, "Not set"))
}
