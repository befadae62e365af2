package model_test

import (
	"cargobike/internal/domains/form/model"
	"cargobike/shared/failure"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Missing(t *testing.T) {
	session := model.Session{}
	assert.Equal(t, model.RequiredFields, session.Missing())
	assert.False(t, session.Complete())

	pickup := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	duration := "1 hour"
	email := "jane@example.org"

	session.PickupTime = &pickup
	session.Duration = &duration
	session.Email = &email

	assert.Equal(t, []model.Field{model.FieldBike, model.FieldAssociation}, session.Missing())

	bike := int64(1)
	association := "Velo"
	session.BikeID = &bike
	session.Association = &association

	assert.Empty(t, session.Missing())
	assert.True(t, session.Complete())
}

func TestMissingFieldsError(t *testing.T) {
	err := error(&model.MissingFieldsError{Fields: []model.Field{model.FieldBike, model.FieldEmail}})

	assert.Equal(t, "Missing fields: bike, email", err.Error())
	assert.True(t, failure.IsValidation(err))

	var missing *model.MissingFieldsError
	assert.True(t, errors.As(err, &missing))
}

func TestState_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]model.State{"state": model.StateChooseBike})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"state":"choose_bike"}`, string(data))
	assert.Equal(t, "state(42)", model.State(42).String())
}

func TestStateFor(t *testing.T) {
	for _, field := range model.RequiredFields {
		_, ok := model.StateFor(field)
		assert.True(t, ok, field)
	}

	_, ok := model.StateFor("colour")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	registry := model.NewRegistry()

	slot := registry.Acquire(7)
	slot.Session = &model.Session{}
	registry.Release(7, slot)

	other := registry.Acquire(8)
	assert.NotSame(t, slot, other)
	registry.Release(8, other)

	again := registry.Acquire(7)
	assert.Same(t, slot, again)
	registry.Release(7, again)

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			held := registry.Acquire(9)
			defer registry.Release(9, held)

			if held.Session == nil {
				held.Session = &model.Session{}
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 2, registry.Active())
	assert.Equal(t, 2, registry.Len())
}

func TestRegistry_ForgetsIdleUsers(t *testing.T) {
	registry := model.NewRegistry()

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func(userID int64) {
			defer wg.Done()

			slot := registry.Acquire(userID)
			defer registry.Release(userID, slot)
		}(int64(i % 5))
	}

	wg.Wait()

	assert.Equal(t, 0, registry.Len())

	slot := registry.Acquire(3)
	slot.Session = &model.Session{}
	registry.Release(3, slot)
	assert.Equal(t, 1, registry.Len())

	slot = registry.Acquire(3)
	slot.Session = nil
	registry.Release(3, slot)
	assert.Equal(t, 0, registry.Len())
}
