package helper_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cargobike/helper"
	"cargobike/internal/domains/bike/mocks"
	"cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/bike/model/dto"
	"cargobike/shared/failure"
)

const fleetYAML = `
bikes:
  - id: 1
    size: L
    name: Long John
  - id: 2
    size: M
    name: Bakfiets
`

func TestParseFleet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []dto.CreateBikeRequest
		wantErr bool
	}{
		{
			name:  "valid fleet",
			input: fleetYAML,
			want: []dto.CreateBikeRequest{
				{ID: 1, Size: "L", Name: "Long John"},
				{ID: 2, Size: "M", Name: "Bakfiets"},
			},
		},
		{
			name:  "empty file",
			input: "",
			want:  []dto.CreateBikeRequest{},
		},
		{
			name:    "duplicate id",
			input:   "bikes:\n  - {id: 1, size: L, name: A}\n  - {id: 1, size: M, name: B}\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			input:   "bikes:\n  - {id: 1, size: L}\n",
			wantErr: true,
		},
		{
			name:    "unknown field",
			input:   "bikes:\n  - {id: 1, size: L, name: A, colour: red}\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := helper.ParseFleet(strings.NewReader(tt.input))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeed(t *testing.T) {
	fleet := []dto.CreateBikeRequest{
		{ID: 1, Size: "L", Name: "Long John"},
		{ID: 2, Size: "M", Name: "Bakfiets"},
	}

	t.Run("skips existing bikes", func(t *testing.T) {
		svc := mocks.NewMockBikeService(gomock.NewController(t))

		svc.EXPECT().Create(gomock.Any(), fleet[0]).Return(failure.Conflict("bike 1 already exists"))
		svc.EXPECT().Create(gomock.Any(), fleet[1]).Return(nil)

		result, err := helper.Seed(context.Background(), svc, fleet, false)

		require.NoError(t, err)
		assert.Equal(t, helper.SeedResult{Created: 1, Skipped: 1}, result)
	})

	t.Run("dry run only reads", func(t *testing.T) {
		svc := mocks.NewMockBikeService(gomock.NewController(t))

		svc.EXPECT().Get(gomock.Any(), int64(1)).Return(model.Bike{ID: 1}, true, nil)
		svc.EXPECT().Get(gomock.Any(), int64(2)).Return(model.Bike{}, false, nil)

		result, err := helper.Seed(context.Background(), svc, fleet, true)

		require.NoError(t, err)
		assert.Equal(t, helper.SeedResult{Created: 1, Skipped: 1}, result)
	})

	t.Run("storage failure stops", func(t *testing.T) {
		svc := mocks.NewMockBikeService(gomock.NewController(t))

		svc.EXPECT().Create(gomock.Any(), fleet[0]).Return(failure.StorageUnavailable(errors.New("disk full")))

		result, err := helper.Seed(context.Background(), svc, fleet, false)

		require.Error(t, err)
		assert.True(t, failure.Is(err, http.StatusServiceUnavailable))
		assert.Equal(t, helper.SeedResult{}, result)
	})
}
