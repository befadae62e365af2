package main

import (
	"cargobike/config"
	"cargobike/helper"
	"cargobike/infras/otel"
	bikeRepository "cargobike/internal/domains/bike/repository"
	bikeService "cargobike/internal/domains/bike/service"
	"cargobike/shared/cache"
	"cargobike/shared/logger"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

func run() error {
	var (
		filePath string
		dryRun   bool
	)

	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVarP(&filePath, "file", "f", "fleet.yaml", "path to the bike fleet YAML file")
	flagSet.BoolVar(&dryRun, "dry-run", false, "report what would change without writing")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)
	logger.SetLogLevel(cfg)

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open fleet file: %w", err)
	}
	defer file.Close()

	fleet, err := helper.ParseFleet(file)
	if err != nil {
		return err
	}

	ctx := context.Background()
	otl := otel.New(cfg)

	defer func() {
		if shutdownErr := otl.Shutdown(ctx); shutdownErr != nil {
			log.Warn().Err(shutdownErr).Msg("failed to flush traces")
		}
	}()

	repo := bikeRepository.New(cfg, otl)
	if err = repo.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize bike store: %w", err)
	}

	result, err := helper.Seed(ctx, bikeService.New(repo, cfg, cache.NewNoopCache(), otl), fleet, dryRun)
	if err != nil {
		return err
	}

	log.Info().
		Int("created", result.Created).
		Int("skipped", result.Skipped).
		Bool("dry_run", dryRun).
		Msg("Fleet seeded")

	return nil
}
