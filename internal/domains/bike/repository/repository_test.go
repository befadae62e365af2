package repository_test

import (
	"cargobike/config"
	"cargobike/infras/otel/mocks"
	"cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/bike/repository"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBikeRepository(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()
	cfg.Storage.BikesFile = "bikes.csv"

	repo := repository.New(cfg, mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, repo.Initialize(ctx))
	require.NoError(t, repo.Insert(ctx, model.Bike{ID: 1, Size: "L", Name: "Long John"}))
	require.NoError(t, repo.Insert(ctx, model.Bike{ID: 2, Size: "M", Name: "Bakfiets"}))

	data, err := os.ReadFile(repo.Store().Path())
	require.NoError(t, err)
	assert.Equal(t, "bike_id,size,name\n1,L,Long John\n2,M,Bakfiets\n", string(data))

	bike, found, err := repo.Get(ctx, int64(2))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.Bike{ID: 2, Size: "M", Name: "Bakfiets"}, bike)

	_, found, err = repo.Get(ctx, int64(9))
	require.NoError(t, err)
	assert.False(t, found)

	bikes, err := repo.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, bikes, 2)
}
