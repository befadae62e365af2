package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cargobike/config"
	"cargobike/infras/otel"
	bikeService "cargobike/internal/domains/bike/service"
	"cargobike/internal/domains/form/model"
	reservationModel "cargobike/internal/domains/reservation/model"
	"cargobike/internal/domains/reservation/model/dto"
	reservationService "cargobike/internal/domains/reservation/service"
	userService "cargobike/internal/domains/user/service"
	"cargobike/shared/constant"
	"cargobike/shared/failure"
	"cargobike/shared/logger"
	"cargobike/shared/timezone"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Form interface {
	// Handle applies one event to the sender's conversation and returns the
	// resulting session. Events of one user are handled one at a time.
	Handle(ctx context.Context, event model.Event) (model.Session, error)
}

type machineImpl struct {
	cfg          *config.Config
	registry     *model.Registry
	presenter    Presenter
	bikes        bikeService.Bike
	users        userService.User
	reservations reservationService.Reservation
	otel         otel.Otel
	after        func(d time.Duration, fn func())
}

func New(
	cfg *config.Config,
	registry *model.Registry,
	presenter Presenter,
	bikes bikeService.Bike,
	users userService.User,
	reservations reservationService.Reservation,
	otel otel.Otel,
) Form {
	return &machineImpl{
		cfg:          cfg,
		registry:     registry,
		presenter:    presenter,
		bikes:        bikes,
		users:        users,
		reservations: reservations,
		otel:         otel,
		after: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

func (m *machineImpl) Handle(ctx context.Context, event model.Event) (session model.Session, err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".form."+string(event.Kind))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetChat(event.ChatID, event.User.ID)

	slot := m.registry.Acquire(event.User.ID)
	defer m.registry.Release(event.User.ID, slot)

	session, err = m.dispatch(ctx, slot, event)
	if err != nil {
		m.report(ctx, event, err)
	}

	return session, err
}

func (m *machineImpl) dispatch(ctx context.Context, slot *model.Slot, event model.Event) (model.Session, error) {
	switch event.Kind {
	case model.EventStartReservation:
		return m.start(ctx, slot, event)
	case model.EventListReservations:
		return idle(slot), m.listReservations(ctx, event)
	case model.EventViewReservation:
		return idle(slot), m.viewReservation(ctx, event)
	}

	if slot.Session == nil {
		return model.Session{State: model.StateIdle}, failure.NoActiveSessionError
	}

	switch event.Kind {
	case model.EventFieldSelected:
		return m.selectField(ctx, slot.Session, event.Field)
	case model.EventDurationChosen:
		return m.chooseDuration(ctx, slot.Session, event.Label)
	case model.EventBikeChosen:
		return m.chooseBike(ctx, slot.Session, event.BikeID)
	case model.EventPickupTimeChosen:
		return m.choosePickupTime(ctx, slot.Session, event.TimestampMs)
	case model.EventTextSubmitted:
		return m.submitText(ctx, slot.Session, event)
	case model.EventValidateRequested:
		return m.validate(ctx, slot)
	case model.EventCancelRequested:
		return m.cancel(ctx, slot)
	default:
		return *slot.Session, failure.UnexpectedInputError
	}
}

func idle(slot *model.Slot) model.Session {
	if slot.Session != nil {
		return *slot.Session
	}

	return model.Session{State: model.StateIdle}
}

// start opens a fresh form, tearing down any form still in progress first.
// A saved profile pre-fills the association and email.
func (m *machineImpl) start(ctx context.Context, slot *model.Slot, event model.Event) (model.Session, error) {
	if slot.Session != nil {
		if _, err := m.cancel(ctx, slot); err != nil {
			return model.Session{State: model.StateCancelled}, err
		}
	}

	session := model.Session{
		User:   event.User,
		ChatID: event.ChatID,
		State:  model.StateChoosingField,
	}

	profile, found, err := m.users.Get(ctx, event.User.ID)
	if err != nil {
		return model.Session{State: model.StateIdle}, fmt.Errorf("failed to load profile: %w", err)
	}

	if found {
		association, email := profile.Association, profile.Email
		session.Association = &association
		session.Email = &email
	}

	ref, err := m.renderMenu(ctx, &session)
	if err != nil {
		return model.Session{State: model.StateIdle}, err
	}

	session.MenuRef = ref
	slot.Session = &session

	log := logger.ForChat(event.ChatID, event.User.ID)
	log.Info().Bool("profile", found).Msg("reservation form started")

	return session, nil
}

func (m *machineImpl) selectField(ctx context.Context, session *model.Session, field model.Field) (model.Session, error) {
	if session.State != model.StateChoosingField {
		return *session, failure.UnexpectedInputError
	}

	state, ok := model.StateFor(field)
	if !ok {
		return *session, failure.UnexpectedInputError
	}

	switch field {
	case model.FieldPickupTime:
		prompt := model.Effect{Kind: model.EffectPromptPickupTime, Text: textPickupPrompt, Edit: session.MenuRef}
		if _, err := m.presenter.Present(ctx, session.ChatID, prompt); err != nil {
			return *session, fmt.Errorf("failed to prompt pickup time: %w", err)
		}

		// The picker button needs a message of its own; it is removed once a time comes back.
		picker := model.Effect{
			Kind: model.EffectPromptPickupTime,
			Text: textPickupSelecting,
			WebApp: &model.WebApp{
				Label: textPickupButton,
				URL:   pickerURL(m.cfg.App.Picker.URL, m.cfg.App.Picker.Text, timezone.Now(), m.cfg.App.Picker.HorizonDays),
			},
		}

		ref, err := m.presenter.Present(ctx, session.ChatID, picker)
		if err != nil {
			return *session, fmt.Errorf("failed to show pickup time picker: %w", err)
		}

		session.PickerRef = ref
	case model.FieldDuration:
		if _, err := m.presenter.Present(ctx, session.ChatID, durationEffect(session.MenuRef)); err != nil {
			return *session, fmt.Errorf("failed to show durations: %w", err)
		}
	case model.FieldBike:
		bikes, err := m.bikes.GetAll(ctx)
		if err != nil {
			return *session, fmt.Errorf("failed to list bikes: %w", err)
		}

		if _, err = m.presenter.Present(ctx, session.ChatID, bikeEffect(session.MenuRef, bikes.ToModels())); err != nil {
			return *session, fmt.Errorf("failed to show bikes: %w", err)
		}
	case model.FieldAssociation, model.FieldEmail:
		if _, err := m.presenter.Present(ctx, session.ChatID, freeTextEffect(session.MenuRef, field)); err != nil {
			return *session, fmt.Errorf("failed to prompt %s: %w", field, err)
		}
	}

	session.State = state

	return *session, nil
}

func (m *machineImpl) chooseDuration(ctx context.Context, session *model.Session, label string) (model.Session, error) {
	if session.State != model.StateChooseDuration || !reservationModel.IsDurationOption(label) {
		return *session, failure.UnexpectedInputError
	}

	next := *session
	next.Duration = &label

	return m.backToMenu(ctx, session, next)
}

func (m *machineImpl) chooseBike(ctx context.Context, session *model.Session, bikeID int64) (model.Session, error) {
	if session.State != model.StateChooseBike {
		return *session, failure.UnexpectedInputError
	}

	_, found, err := m.bikes.Get(ctx, bikeID)
	if err != nil {
		return *session, fmt.Errorf("failed to get bike: %w", err)
	}

	if !found {
		return *session, failure.UnexpectedInputError
	}

	next := *session
	next.BikeID = &bikeID

	return m.backToMenu(ctx, session, next)
}

func (m *machineImpl) choosePickupTime(ctx context.Context, session *model.Session, timestampMs int64) (model.Session, error) {
	if session.State != model.StateChoosePickupTime || timestampMs <= 0 {
		return *session, failure.UnexpectedInputError
	}

	if session.PickerRef != constant.Empty {
		if err := m.presenter.Delete(ctx, session.ChatID, session.PickerRef); err != nil {
			return *session, fmt.Errorf("failed to remove pickup time prompt: %w", err)
		}

		session.PickerRef = constant.Empty
	}

	pickup := timezone.FromUnixMilli(timestampMs).Truncate(time.Second)

	next := *session
	next.PickupTime = &pickup

	return m.backToMenu(ctx, session, next)
}

func (m *machineImpl) submitText(ctx context.Context, session *model.Session, event model.Event) (model.Session, error) {
	var field model.Field

	switch session.State {
	case model.StateChooseAssociation:
		field = model.FieldAssociation
	case model.StateChooseEmail:
		field = model.FieldEmail
	default:
		return *session, failure.UnexpectedInputError
	}

	text := strings.TrimSpace(event.Text)
	if text == constant.Empty || (event.Field != constant.Empty && event.Field != field) {
		return *session, failure.UnexpectedInputError
	}

	if event.InputRef != constant.Empty {
		if err := m.presenter.Delete(ctx, session.ChatID, event.InputRef); err != nil {
			return *session, fmt.Errorf("failed to remove %s message: %w", field, err)
		}
	}

	next := *session
	if field == model.FieldAssociation {
		next.Association = &text
	} else {
		next.Email = &text
	}

	return m.backToMenu(ctx, session, next)
}

// backToMenu re-renders the menu for next and only then makes it the
// current session, so a failed render leaves the form as it was.
func (m *machineImpl) backToMenu(ctx context.Context, session *model.Session, next model.Session) (model.Session, error) {
	next.State = model.StateChoosingField

	if _, err := m.renderMenu(ctx, &next); err != nil {
		return *session, err
	}

	*session = next

	return next, nil
}

func (m *machineImpl) renderMenu(ctx context.Context, session *model.Session) (model.MessageRef, error) {
	bikeName, err := m.bikeName(ctx, session.BikeID)
	if err != nil {
		return constant.Empty, err
	}

	ref, err := m.presenter.Present(ctx, session.ChatID, menuEffect(session, bikeName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to show reservation menu: %w", err)
	}

	if session.MenuRef != constant.Empty {
		return session.MenuRef, nil
	}

	return ref, nil
}

func (m *machineImpl) bikeName(ctx context.Context, bikeID *int64) (string, error) {
	if bikeID == nil {
		return constant.NotSet, nil
	}

	bike, found, err := m.bikes.Get(ctx, *bikeID)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get bike: %w", err)
	}

	if !found {
		return "#" + strconv.FormatInt(*bikeID, 10), nil
	}

	return bike.Name, nil
}

// validate commits a complete form. An incomplete one gets a short lived
// warning listing what is missing and stays open.
func (m *machineImpl) validate(ctx context.Context, slot *model.Slot) (model.Session, error) {
	session := slot.Session

	if session.State != model.StateChoosingField {
		return *session, failure.UnexpectedInputError
	}

	if missing := session.Missing(); len(missing) > 0 {
		return *session, m.warnMissing(ctx, session, missing)
	}

	req := dto.CommitRequest{
		User:        session.User,
		Association: *session.Association,
		Email:       *session.Email,
		BikeID:      *session.BikeID,
		Start:       *session.PickupTime,
		Duration:    *session.Duration,
	}

	bikeName, err := m.bikeName(ctx, session.BikeID)
	if err != nil {
		return *session, err
	}

	reservation, err := m.reservations.Commit(ctx, req)
	if err != nil {
		return *session, fmt.Errorf("failed to commit reservation: %w", err)
	}

	committed := *session
	committed.State = model.StateCommitted
	slot.Session = nil

	log := logger.ForChat(committed.ChatID, committed.User.ID)
	log.Info().Uint64("reservation_id", reservation.ID).Msg("reservation form committed")

	var errs []error

	if err = m.presenter.Delete(ctx, committed.ChatID, committed.MenuRef); err != nil {
		errs = append(errs, fmt.Errorf("failed to remove reservation menu: %w", err))
	}

	effect := model.Effect{
		Kind: model.EffectShowCommitted,
		Text: textCommitted + "\n\n" + summary(&committed, bikeName),
	}

	if _, err = m.presenter.Present(ctx, committed.ChatID, effect); err != nil {
		errs = append(errs, fmt.Errorf("failed to show reservation summary: %w", err))
	}

	return committed, errors.Join(errs...)
}

func (m *machineImpl) warnMissing(ctx context.Context, session *model.Session, missing []model.Field) error {
	missingErr := &model.MissingFieldsError{Fields: missing}
	dismissAfter := time.Duration(m.cfg.App.WarningDismissSeconds) * time.Second

	effect := model.Effect{
		Kind:         model.EffectShowMissingFieldsWarning,
		Text:         missingErr.Error(),
		Missing:      missing,
		DismissAfter: dismissAfter,
	}

	ref, err := m.presenter.Present(ctx, session.ChatID, effect)
	if err != nil {
		return fmt.Errorf("failed to show missing fields: %w", err)
	}

	chatID := session.ChatID
	log := logger.ForChat(chatID, session.User.ID)
	detached := context.WithoutCancel(ctx)

	m.after(dismissAfter, func() {
		if err := m.presenter.Delete(detached, chatID, ref); err != nil {
			log.Error().Err(err).Msg("failed to dismiss missing fields warning")
		}
	})

	return missingErr
}

// cancel drops the form without persisting anything. The session is gone
// even when removing its messages fails.
func (m *machineImpl) cancel(ctx context.Context, slot *model.Slot) (model.Session, error) {
	cancelled := *slot.Session
	cancelled.State = model.StateCancelled
	slot.Session = nil

	var errs []error

	if _, err := m.presenter.Present(ctx, cancelled.ChatID, model.Effect{Kind: model.EffectShowCancelled, Text: textCancelled}); err != nil {
		errs = append(errs, fmt.Errorf("failed to show cancellation: %w", err))
	}

	for _, ref := range []model.MessageRef{cancelled.MenuRef, cancelled.PickerRef} {
		if ref == constant.Empty {
			continue
		}

		if err := m.presenter.Delete(ctx, cancelled.ChatID, ref); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove message %s: %w", ref, err))
		}
	}

	log := logger.ForChat(cancelled.ChatID, cancelled.User.ID)
	log.Info().Msg("reservation form cancelled")

	return cancelled, errors.Join(errs...)
}

func (m *machineImpl) listReservations(ctx context.Context, event model.Event) error {
	reservations, err := m.reservations.GetAll(ctx, &event.User.ID)
	if err != nil {
		return fmt.Errorf("failed to list reservations: %w", err)
	}

	if _, err = m.presenter.Present(ctx, event.ChatID, reservationListEffect(reservations)); err != nil {
		return fmt.Errorf("failed to show reservations: %w", err)
	}

	return nil
}

func (m *machineImpl) viewReservation(ctx context.Context, event model.Event) error {
	reservation, found, err := m.reservations.Get(ctx, event.ReservationID)
	if err != nil {
		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if !found || reservation.UserID != event.User.ID {
		return failure.NotFound("reservation not found")
	}

	var res dto.ReservationResponse
	res.FromModel(reservation)

	effect := model.Effect{
		Kind: model.EffectShowReservationDetails,
		Text: fmt.Sprintf("Details for reservation %s:\n%s", res.ID, res.Details()),
	}

	if _, err = m.presenter.Present(ctx, event.ChatID, effect); err != nil {
		return fmt.Errorf("failed to show reservation: %w", err)
	}

	return nil
}

// report tells the user an event failed. Missing fields were already shown.
func (m *machineImpl) report(ctx context.Context, event model.Event, err error) {
	log := logger.ForChat(event.ChatID, event.User.ID)

	var missing *model.MissingFieldsError
	if errors.As(err, &missing) {
		log.Info().Err(err).Msg("reservation form incomplete")

		return
	}

	log.Error().Err(err).Str("event", string(event.Kind)).Msg("failed to handle chat event")

	text := textUnexpected
	switch code := failure.GetCode(err); {
	case failure.IsStorageUnavailable(err):
		text = textRetry
	case code < http.StatusInternalServerError && code != http.StatusUnprocessableEntity:
		var fail *failure.Failure
		if errors.As(err, &fail) {
			text = fail.Message
		}
	}

	if _, presentErr := m.presenter.Present(ctx, event.ChatID, model.Effect{Kind: model.EffectShowError, Text: text}); presentErr != nil {
		log.Error().Err(presentErr).Msg("failed to report error to chat")
	}
}
