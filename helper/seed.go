package helper

import (
	"cargobike/internal/domains/bike/model/dto"
	bikeService "cargobike/internal/domains/bike/service"
	"cargobike/shared/failure"
	"cargobike/shared/validator"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type fleetFile struct {
	Bikes []fleetBike `yaml:"bikes"`
}

type fleetBike struct {
	ID   int64  `yaml:"id"`
	Size string `yaml:"size"`
	Name string `yaml:"name"`
}

type SeedResult struct {
	Created int
	Skipped int
}

// ParseFleet reads a fleet manifest such as
//
//	bikes:
//	  - id: 1
//	    size: L
//	    name: Long John
func ParseFleet(r io.Reader) ([]dto.CreateBikeRequest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file fleetFile
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode fleet file: %w", err)
	}

	seen := make(map[int64]struct{}, len(file.Bikes))
	bikes := make([]dto.CreateBikeRequest, 0, len(file.Bikes))

	for i, bike := range file.Bikes {
		req := dto.CreateBikeRequest{ID: bike.ID, Size: bike.Size, Name: bike.Name}

		if err := validator.ValidateStruct(&req); err != nil {
			return nil, fmt.Errorf("bike #%d: %w", i+1, err)
		}

		if _, ok := seen[req.ID]; ok {
			return nil, failure.Validation(fmt.Sprintf("bike #%d: id %d is listed twice", i+1, req.ID)) //nolint:wrapcheck
		}

		seen[req.ID] = struct{}{}
		bikes = append(bikes, req)
	}

	return bikes, nil
}

// Seed adds every bike the fleet does not have yet. Bikes already on file are left untouched.
func Seed(ctx context.Context, bikes bikeService.Bike, fleet []dto.CreateBikeRequest, dryRun bool) (SeedResult, error) {
	var result SeedResult

	for _, bike := range fleet {
		if dryRun {
			_, found, err := bikes.Get(ctx, bike.ID)
			if err != nil {
				return result, fmt.Errorf("failed to look up bike %d: %w", bike.ID, err)
			}

			if found {
				result.Skipped++
			} else {
				result.Created++
			}

			continue
		}

		err := bikes.Create(ctx, bike)

		switch {
		case err == nil:
			result.Created++

			log.Info().Int64("bike_id", bike.ID).Str("name", bike.Name).Msg("Bike added")
		case failure.Is(err, http.StatusConflict):
			result.Skipped++

			log.Debug().Int64("bike_id", bike.ID).Msg("Bike already exists, skipping")
		default:
			return result, fmt.Errorf("failed to add bike %d: %w", bike.ID, err)
		}
	}

	return result, nil
}
