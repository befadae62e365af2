package service

import (
	bikeModel "cargobike/internal/domains/bike/model"
	"cargobike/internal/domains/form/model"
	reservationModel "cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	"cargobike/shared/constant"
	"cargobike/shared/timezone"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	checkMark = " ✔️"

	dataChoosePrefix   = "choose_"
	dataDurationPrefix = "duration_"
	dataBikePrefix     = "bike_"
	dataViewPrefix     = "view_"
	dataCancel         = "cancel_reservation"
	dataValidate       = "validate_reservation"
	dataNewReservation = "new_reservation"

	textCommitted       = "Reservation created successfully!"
	textCancelled       = "Reservation creation canceled."
	textPickupPrompt    = "Please select pickup time"
	textPickupButton    = "Select Pickup Time"
	textPickupSelecting = "selecting..."
	textDurationPrompt  = "Choose a duration:"
	textBikePrompt      = "Choose a bike:"
	textAssociation     = "Please send the association name:"
	textEmail           = "Please send your email:"
	textReservations    = "Here are your reservations:"
	textNoReservations  = "You currently have no reservations."
	textNewReservation  = "+ New Reservation..."
	textUnexpected      = "Something went wrong, please start again with /res."
	textRetry           = "Storage is unavailable right now, your form is kept. Please try again in a moment."
)

var fieldButtons = []struct {
	field model.Field
	label string
}{
	{model.FieldPickupTime, "Choose Pickup Time"},
	{model.FieldDuration, "Choose Duration"},
	{model.FieldBike, "Choose Bike"},
	{model.FieldAssociation, "Set Association"},
	{model.FieldEmail, "Set Email"},
}

// summary lists the current form values, "Not set" standing in for missing ones.
func summary(session *model.Session, bikeName string) string {
	pickup := constant.NotSet
	if session.PickupTime != nil {
		pickup = timezone.Format(*session.PickupTime, constant.DisplayDateTime)
	}

	if session.BikeID == nil {
		bikeName = constant.NotSet
	}

	lines := []string{
		"Pickup Time: " + pickup,
		"Duration: " + valueOrNotSet(session.Duration),
		"Bike: " + bikeName,
		"Association: " + valueOrNotSet(session.Association),
		"Email: " + valueOrNotSet(session.Email),
	}

	return strings.Join(lines, "\n") + "\n"
}

func valueOrNotSet(value *string) string {
	if value == nil {
		return constant.NotSet
	}

	return *value
}

func menuEffect(session *model.Session, bikeName string) model.Effect {
	buttons := make([]model.Button, 0, len(fieldButtons)+2)

	for _, fb := range fieldButtons {
		label := fb.label
		if session.Has(fb.field) {
			label += checkMark
		}

		buttons = append(buttons, model.Button{Label: label, Data: dataChoosePrefix + string(fb.field)})
	}

	buttons = append(buttons, model.Button{Label: "❌ Cancel", Data: dataCancel})

	if session.Complete() {
		buttons = append(buttons, model.Button{Label: "✅ Validate", Data: dataValidate})
	}

	return model.Effect{
		Kind:    model.EffectShowFieldMenu,
		Text:    "<b>New Reservation:</b> \n" + summary(session, bikeName),
		HTML:    true,
		Buttons: buttons,
		Edit:    session.MenuRef,
	}
}

func durationEffect(menu model.MessageRef) model.Effect {
	buttons := make([]model.Button, len(reservationModel.DurationOptions))
	for i, option := range reservationModel.DurationOptions {
		buttons[i] = model.Button{Label: option, Data: dataDurationPrefix + option}
	}

	return model.Effect{
		Kind:    model.EffectShowDurationOptions,
		Text:    textDurationPrompt,
		Buttons: buttons,
		Edit:    menu,
	}
}

func bikeEffect(menu model.MessageRef, bikes []bikeModel.Bike) model.Effect {
	buttons := make([]model.Button, len(bikes))
	for i, bike := range bikes {
		buttons[i] = model.Button{Label: bike.Label(), Data: dataBikePrefix + strconv.FormatInt(bike.ID, 10)}
	}

	return model.Effect{
		Kind:    model.EffectShowBikeOptions,
		Text:    textBikePrompt,
		Buttons: buttons,
		Edit:    menu,
	}
}

func freeTextEffect(menu model.MessageRef, field model.Field) model.Effect {
	text := textEmail
	if field == model.FieldAssociation {
		text = textAssociation
	}

	return model.Effect{
		Kind: model.EffectPromptFreeText,
		Text: text,
		Edit: menu,
	}
}

// pickerURL points the time picker at the booking window starting today.
func pickerURL(base, text string, now time.Time, horizonDays int) string {
	from := now.Format(constant.DateFormat)
	until := now.AddDate(0, 0, horizonDays).Format(constant.DateFormat)

	return fmt.Sprintf("%s?text=%s&min=%s&max=%s", base, url.PathEscape(text), from, until)
}

func reservationListEffect(reservations []reservationModel.Reservation) model.Effect {
	buttons := make([]model.Button, 0, len(reservations)+1)
	for i, reservation := range reservations {
		buttons = append(buttons, model.Button{
			Label: dto.ListLabel(i+1, reservation),
			Data:  dataViewPrefix + strconv.FormatUint(reservation.ID, 10),
		})
	}

	buttons = append(buttons, model.Button{Label: textNewReservation, Data: dataNewReservation})

	text := textNoReservations
	if len(reservations) > 0 {
		text = textReservations
	}

	return model.Effect{
		Kind:    model.EffectShowReservationList,
		Text:    text,
		Buttons: buttons,
	}
}
