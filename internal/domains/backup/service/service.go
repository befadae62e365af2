package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Backup=MockBackupService

import (
	"cargobike/infras/csvstore"
	"cargobike/infras/otel"
	"cargobike/infras/s3"
	"cargobike/internal/domains/backup/model/dto"
	bikeRepo "cargobike/internal/domains/bike/repository"
	reservationRepo "cargobike/internal/domains/reservation/repository"
	userRepo "cargobike/internal/domains/user/repository"
	"cargobike/shared/constant"
	"cargobike/shared/timezone"
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

const (
	backupDirectory = "backups"
	backupStamp     = "20060102-150405"
)

type Backup interface {
	// Create uploads a snapshot of every record file under a fresh directory.
	Create(ctx context.Context) (dto.BackupResponse, error)
}

type serviceImpl struct {
	stores []*csvstore.Store
	s3     s3.S3
	otel   otel.Otel
	now    func() string
}

func New(bikes bikeRepo.Bike, users userRepo.User, reservations reservationRepo.Reservation, s3 s3.S3, otel otel.Otel) Backup {
	return &serviceImpl{
		stores: []*csvstore.Store{bikes.Store(), users.Store(), reservations.Store()},
		s3:     s3,
		otel:   otel,
		now: func() string {
			return timezone.Now().Format(backupStamp)
		},
	}
}

// Create is all or nothing: when one upload fails the objects already written are removed.
func (s *serviceImpl) Create(ctx context.Context) (res dto.BackupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".backup.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Directory = path.Join(backupDirectory, s.now())
	res.Files = make([]string, 0, len(s.stores))

	for _, store := range s.stores {
		name := filepath.Base(store.Path())

		data, snapErr := store.Snapshot(ctx)
		if snapErr != nil {
			s.rollback(ctx, res)

			return dto.BackupResponse{}, fmt.Errorf("failed to snapshot %s: %w", name, snapErr)
		}

		if _, err = s.s3.UploadFileBytes(ctx, res.Directory, name, constant.ContentTypeCSV, data); err != nil {
			log.Error().Err(err).Str("file", name).Msg("failed to upload backup")
			s.rollback(ctx, res)

			return dto.BackupResponse{}, fmt.Errorf("failed to upload %s: %w", name, err)
		}

		res.Files = append(res.Files, name)
	}

	log.Info().Str("directory", res.Directory).Strs("files", res.Files).Msg("backup created")

	return res, nil
}

func (s *serviceImpl) rollback(ctx context.Context, partial dto.BackupResponse) {
	for _, name := range partial.Files {
		if err := s.s3.DeleteFile(ctx, partial.Directory, name); err != nil {
			log.Error().Err(err).Str("directory", partial.Directory).Str("file", name).Msg("failed to remove partial backup")
		}
	}
}
