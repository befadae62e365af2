// Package csvstore keeps homogeneous records in a delimited file with a fixed
// header. Every operation on one Store holds the Store's mutex for its whole
// duration, I/O included, so rows are never interleaved or observed half
// written. Nothing is locked across processes: two Stores pointed at the same
// file, in one process or in several, are not coordinated.
package csvstore

import (
	"bytes"
	"cargobike/infras/otel"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Visitor receives one decoded row in file order. Returning stop ends the scan early.
type Visitor func(line int, row []string) (stop bool, err error)

// Transform returns the row to write back in place of row.
type Transform func(line int, row []string) ([]string, error)

type Store struct {
	mu     sync.Mutex
	path   string
	header []string
	otel   otel.Otel
}

func New(path string, header []string, otl otel.Otel) *Store {
	return &Store{
		path:   path,
		header: slices.Clone(header),
		otel:   otl,
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Header() []string {
	return slices.Clone(s.header)
}

// Initialize creates the backing file with its header row. An existing file is
// left untouched; exclusive creation decides the winner when several Stores race.
func (s *Store) Initialize(ctx context.Context) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Initialize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelFileAttributeKey, s.path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to create storage directory: %w", err))
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}

	if err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to create %s: %w", s.path, err))
	}

	if err = writeRows(file, s.header, nil); err != nil {
		_ = file.Close()

		return failure.StorageUnavailable(fmt.Errorf("failed to write header to %s: %w", s.path, err))
	}

	if err = file.Close(); err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to close %s: %w", s.path, err))
	}

	log.Info().Str("file", s.path).Msg("created record file")

	return nil
}

// Append writes one already encoded row at the end of the file.
func (s *Store) Append(ctx context.Context, row []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelFileAttributeKey, s.path)

	if len(row) != len(s.header) {
		return fmt.Errorf("row has %d fields, %s expects %d", len(row), s.path, len(s.header))
	}

	if err = ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to open %s for append: %w", s.path, err))
	}

	writer := csv.NewWriter(file)
	if err = writer.Write(row); err == nil {
		writer.Flush()
		err = writer.Error()
	}

	closeErr := file.Close()

	if err = errors.Join(err, closeErr); err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to append to %s: %w", s.path, err))
	}

	return nil
}

// Scan reads every row in file order. A row that does not parse, or that the
// visitor rejects, aborts the scan with a malformed record failure.
func (s *Store) Scan(ctx context.Context, visit Visitor) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Scan")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelFileAttributeKey, s.path)

	if err = ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to open %s: %w", s.path, err))
	}
	defer file.Close()

	return s.read(file, visit)
}

// RewriteAll replaces every row with its transform and writes the whole file
// back, header included, through a temporary file renamed over the original.
func (s *Store) RewriteAll(ctx context.Context, transform Transform) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".RewriteAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelFileAttributeKey, s.path)

	if err = ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to open %s: %w", s.path, err))
	}

	var rows [][]string

	err = s.read(file, func(line int, row []string) (bool, error) {
		replaced, transformErr := transform(line, row)
		if transformErr != nil {
			return true, transformErr
		}

		if len(replaced) != len(s.header) {
			return true, fmt.Errorf("transform returned %d fields, expected %d", len(replaced), len(s.header))
		}

		rows = append(rows, replaced)

		return false, nil
	})

	_ = file.Close()

	if err != nil {
		return err
	}

	return s.replace(rows)
}

// Snapshot returns the raw file content.
func (s *Store) Snapshot(ctx context.Context) (data []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err = os.ReadFile(s.path)
	if err != nil {
		return nil, failure.StorageUnavailable(fmt.Errorf("failed to read %s: %w", s.path, err))
	}

	return data, nil
}

func (s *Store) read(r io.Reader, visit Visitor) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(s.header)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return failure.MalformedRecord(fmt.Sprintf("%s: missing header row", s.path))
	}

	if err != nil {
		return failure.MalformedRecord(fmt.Sprintf("%s: unreadable header: %v", s.path, err))
	}

	if !slices.Equal(header, s.header) {
		return failure.MalformedRecord(fmt.Sprintf("%s: unexpected header %v", s.path, header))
	}

	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return failure.MalformedRecord(fmt.Sprintf("%s: line %d: %v", s.path, line, err))
		}

		stop, err := visit(line, row)
		if err != nil {
			var fail *failure.Failure
			if errors.As(err, &fail) {
				return err
			}

			return failure.MalformedRecord(fmt.Sprintf("%s: line %d: %v", s.path, line, err))
		}

		if stop {
			return nil
		}
	}
}

func (s *Store) replace(rows [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return failure.StorageUnavailable(fmt.Errorf("failed to create temporary file: %w", err))
	}

	tmpName := tmp.Name()

	if err = writeRows(tmp, s.header, rows); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return failure.StorageUnavailable(fmt.Errorf("failed to rewrite %s: %w", s.path, err))
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return failure.StorageUnavailable(fmt.Errorf("failed to close temporary file: %w", err))
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)

		return failure.StorageUnavailable(fmt.Errorf("failed to set permissions on %s: %w", tmpName, err))
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)

		return failure.StorageUnavailable(fmt.Errorf("failed to replace %s: %w", s.path, err))
	}

	return nil
}

func writeRows(w io.Writer, header []string, rows [][]string) error {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(header); err != nil {
		return err //nolint:wrapcheck
	}

	if err := writer.WriteAll(rows); err != nil {
		return err //nolint:wrapcheck
	}

	_, err := w.Write(buf.Bytes())

	return err //nolint:wrapcheck
}
