package repository

import (
	"cargobike/infras/csvstore"
	"cargobike/infras/otel"
	"cargobike/shared/constant"
	"cargobike/shared/logger"
	"cargobike/shared/timezone"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

const (
	tagName       = "csv"
	tagPrimaryKey = "primary"
)

var (
	errNoPrimaryKey = errors.New("no primary column")
	timeType        = reflect.TypeOf(time.Time{})
)

// Validator is implemented by models that check their own fields after decoding.
type Validator interface {
	Validate() error
}

type column struct {
	name  string
	index []int
	kind  reflect.Kind
	isKey bool
}

// Repository maps the csv-tagged fields of T onto the rows of one record store.
// Columns follow the struct field order; the primary column is tagged `csv:"name,primary"`.
type Repository[T any] struct {
	store   *csvstore.Store
	otel    otel.Otel
	entitas string
	columns []column
	primary int
}

func NewRepository[T any](entitasName, path string, otl otel.Otel) Repository[T] {
	var zero T

	columns := getColumns(reflect.TypeOf(zero), nil)

	primary := -1
	header := make([]string, len(columns))

	for i, col := range columns {
		header[i] = col.name

		if col.isKey {
			primary = i
		}
	}

	return Repository[T]{
		store:   csvstore.New(path, header, otl),
		otel:    otl,
		entitas: entitasName,
		columns: columns,
		primary: primary,
	}
}

func getColumns(reflectType reflect.Type, parent []int) []column {
	var columns []column

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		index := append(append([]int{}, parent...), i)

		tag := field.Tag.Get(tagName)

		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type, index)...)

			continue
		}

		if tag == "" || tag == "-" {
			continue
		}

		name, option, _ := strings.Cut(tag, ",")

		kind := field.Type.Kind()
		if field.Type == timeType {
			kind = reflect.Invalid
		}

		columns = append(columns, column{
			name:  name,
			index: index,
			kind:  kind,
			isKey: option == tagPrimaryKey,
		})
	}

	return columns
}

// Store exposes the underlying record store, e.g. for snapshots.
func (repo *Repository[T]) Store() *csvstore.Store {
	return repo.store
}

func (repo *Repository[T]) Initialize(ctx context.Context) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Initialize", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if err := repo.store.Initialize(ctx); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to initialize storage (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if err := repo.store.Append(ctx, repo.encode(model)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

// Get returns the first record whose primary column equals id. A miss is
// reported through found, not as an error.
func (repo *Repository[T]) Get(ctx context.Context, id any) (model T, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if repo.primary < 0 {
		return model, false, errNoPrimaryKey
	}

	key := fmt.Sprint(id)
	scope.SetAttribute(constant.OtelQueryAttributeKey, key)

	err = repo.store.Scan(ctx, func(_ int, row []string) (bool, error) {
		decoded, decodeErr := repo.decode(row)
		if decodeErr != nil {
			return true, decodeErr
		}

		if repo.keyOf(decoded) != key {
			return false, nil
		}

		model = decoded
		found = true

		return true, nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, false, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, found, nil
}

// GetAll returns the records accepted by filter in file order. A nil filter accepts everything.
func (repo *Repository[T]) GetAll(ctx context.Context, filter func(T) bool) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	models := []T{}

	err := repo.store.Scan(ctx, func(_ int, row []string) (bool, error) {
		decoded, decodeErr := repo.decode(row)
		if decodeErr != nil {
			return true, decodeErr
		}

		if filter == nil || filter(decoded) {
			models = append(models, decoded)
		}

		return false, nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id any) (bool, error) {
	_, found, err := repo.Get(ctx, id)

	return found, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter func(T) bool) (int, error) {
	models, err := repo.GetAll(ctx, filter)

	return len(models), err
}

// Update rewrites the whole file, replacing the records whose primary column
// equals id with update's result. It reports whether any record matched.
func (repo *Repository[T]) Update(ctx context.Context, id any, update func(T) T) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if repo.primary < 0 {
		return false, errNoPrimaryKey
	}

	key := fmt.Sprint(id)
	matched := false

	err := repo.store.RewriteAll(ctx, func(_ int, row []string) ([]string, error) {
		decoded, decodeErr := repo.decode(row)
		if decodeErr != nil {
			return nil, decodeErr
		}

		if repo.keyOf(decoded) != key {
			return row, nil
		}

		matched = true

		return repo.encode(update(decoded)), nil
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return matched, nil
}

func (repo *Repository[T]) keyOf(model T) string {
	value := reflect.ValueOf(model)
	col := repo.columns[repo.primary]

	return formatValue(col, value.FieldByIndex(col.index))
}

func (repo *Repository[T]) encode(model T) []string {
	value := reflect.ValueOf(model)
	row := make([]string, len(repo.columns))

	for i, col := range repo.columns {
		row[i] = formatValue(col, value.FieldByIndex(col.index))
	}

	return row
}

func (repo *Repository[T]) decode(row []string) (T, error) {
	var model T

	value := reflect.ValueOf(&model).Elem()

	for i, col := range repo.columns {
		if err := parseValue(col, value.FieldByIndex(col.index), row[i]); err != nil {
			return model, fmt.Errorf("column %s: %w", col.name, err)
		}
	}

	if v, ok := any(&model).(Validator); ok {
		if err := v.Validate(); err != nil {
			return model, err //nolint:wrapcheck
		}
	}

	return model, nil
}

func formatValue(col column, field reflect.Value) string {
	switch col.kind {
	case reflect.Invalid:
		t, _ := field.Interface().(time.Time)

		return timezone.Format(t, constant.DateTimeFormat)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(field.Bool())
	default:
		return field.String()
	}
}

func parseValue(col column, field reflect.Value, raw string) error {
	switch col.kind {
	case reflect.Invalid:
		t, err := timezone.Parse(constant.DateTimeFormat, raw)
		if err != nil {
			return err //nolint:wrapcheck
		}

		field.Set(reflect.ValueOf(t))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err //nolint:wrapcheck
		}

		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return err //nolint:wrapcheck
		}

		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err //nolint:wrapcheck
		}

		field.SetBool(b)
	case reflect.String:
		field.SetString(raw)
	default:
		return fmt.Errorf("unsupported column type %s", field.Type())
	}

	return nil
}
