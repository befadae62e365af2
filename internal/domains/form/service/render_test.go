package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bikeModel "cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/form/model"
	"cargobike/shared/timezone"
)

func TestPickerURL(t *testing.T) {
	now := time.Date(2024, 2, 20, 9, 30, 0, 0, time.UTC)

	got := pickerURL("https://expented.github.io/tgdtp/", "Select pickup time", now, 30)

	assert.Equal(t, "https://expented.github.io/tgdtp/?text=Select%20pickup%20time&min=2024-02-20&max=2024-03-21", got)
}

func TestMenuEffect(t *testing.T) {
	timezone.Init("UTC")

	pickup := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	duration := "1 hour"
	bikeID := int64(2)

	t.Run("partial form has no validate button", func(t *testing.T) {
		session := &model.Session{Duration: &duration, MenuRef: "9"}

		effect := menuEffect(session, "ignored")

		assert.Equal(t, model.MessageRef("9"), effect.Edit)
		assert.True(t, effect.HTML)
		assert.Equal(t, "<b>New Reservation:</b> \n"+
			"Pickup Time: Not set\n"+
			"Duration: 1 hour\n"+
			"Bike: Not set\n"+
			"Association: Not set\n"+
			"Email: Not set\n", effect.Text)
		assert.Len(t, effect.Buttons, 6)
		assert.Equal(t, model.Button{Label: "Choose Duration ✔️", Data: "choose_duration"}, effect.Buttons[1])
		assert.Equal(t, model.Button{Label: "❌ Cancel", Data: "cancel_reservation"}, effect.Buttons[5])
	})

	t.Run("complete form can be validated", func(t *testing.T) {
		association, email := "Velo Club", "jane@example.org"
		session := &model.Session{
			PickupTime:  &pickup,
			Duration:    &duration,
			BikeID:      &bikeID,
			Association: &association,
			Email:       &email,
		}

		effect := menuEffect(session, "Long John")

		assert.Contains(t, effect.Text, "Pickup Time: 01-01-2024 10:00\n")
		assert.Contains(t, effect.Text, "Bike: Long John\n")
		assert.Len(t, effect.Buttons, 7)
		assert.Equal(t, model.Button{Label: "✅ Validate", Data: "validate_reservation"}, effect.Buttons[6])
	})
}

func TestBikeEffect(t *testing.T) {
	effect := bikeEffect("3", []bikeModel.Bike{{ID: 1, Size: "M", Name: "Bakfiets"}})

	assert.Equal(t, model.EffectShowBikeOptions, effect.Kind)
	assert.Equal(t, "Choose a bike:", effect.Text)
	assert.Equal(t, []model.Button{{Label: "1 - Bakfiets (M)", Data: "bike_1"}}, effect.Buttons)
	assert.Equal(t, model.MessageRef("3"), effect.Edit)
}

func TestDurationEffect(t *testing.T) {
	effect := durationEffect("3")

	labels := make([]string, len(effect.Buttons))
	for i, button := range effect.Buttons {
		labels[i] = button.Label
	}

	assert.Equal(t, []string{"30 minutes", "1 hour", "3 hours", "5 hours", "1 day"}, labels)
	assert.Equal(t, "duration_1 day", effect.Buttons[4].Data)
}
