package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/pkg/patch"

	"github.com/google/uuid"
)

type FlowState string

const (
	FlowUnauthenticated FlowState = "UNAUTHENTICATED"
	FlowFormEditing     FlowState = "FORM_EDITING"
	FlowSubmitting      FlowState = "SUBMITTING"
	FlowSuccess         FlowState = "SUCCESS"
)

// FlowTarget is the spot being booked.
type FlowTarget struct {
	LotID     int64
	LotName   string
	SpotID    int64
	SpotLabel string
}

// FormPatch carries the edited fields; nil leaves a field unchanged.
type FormPatch struct {
	UserName      *string
	UserEmail     *string
	UserPhone     *string
	LicensePlate  *string
	StartTime     *time.Time
	DurationHours *int
}

type FlowView struct {
	ID          uuid.UUID
	State       FlowState
	Target      FlowTarget
	Form        reservation.Form
	EndTime     time.Time
	FieldErrors reservation.ValidationErrors
	FormError   string
	Created     *reservation.Reservation
}

type flowDeps struct {
	sessions        SessionReader
	auth            Auth
	api             ReservationAPI
	clock           clock.Clock
	defaultDuration int
	logger          *slog.Logger
}

// ReservationFlow is one open reservation dialog.
type ReservationFlow struct {
	id   uuid.UUID
	deps flowDeps

	mu          sync.Mutex
	state       FlowState
	target      FlowTarget
	form        reservation.Form
	fieldErrors reservation.ValidationErrors
	formError   string
	created     *reservation.Reservation
	// filledBy is the session that pre-filled the requester fields.
	filledBy session.Session
}

func newReservationFlow(target FlowTarget, deps flowDeps) *ReservationFlow {
	return &ReservationFlow{
		id:     uuid.New(),
		deps:   deps,
		state:  FlowUnauthenticated,
		target: target,
		form: reservation.Form{
			StartTime:     deps.clock.Now().Truncate(time.Minute),
			DurationHours: deps.defaultDuration,
		},
	}
}

func (f *ReservationFlow) ID() uuid.UUID {
	return f.id
}

// Check re-reads the session. Without one the flow falls back to
// Unauthenticated and forgets the requester fields; with one it moves to
// FormEditing, pre-filled from the session.
func (f *ReservationFlow) Check(ctx context.Context) (FlowView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowSubmitting || f.state == FlowSuccess {
		return f.viewLocked(), nil
	}

	s, err := f.deps.sessions.Current(ctx)
	if err != nil {
		return f.viewLocked(), errs.Mark(err, ErrSessionUnavailable)
	}

	if !s.IsAuthenticated() {
		f.state = FlowUnauthenticated
		f.wipeRequesterLocked()
		return f.viewLocked(), nil
	}

	f.adoptSessionLocked(s)
	return f.viewLocked(), nil
}

// Authenticate is the "go authenticate" transition of an Unauthenticated flow.
func (f *ReservationFlow) Authenticate(ctx context.Context, creds user.Credentials) (FlowView, error) {
	f.mu.Lock()
	if err := f.guardIdleLocked(); err != nil {
		view := f.viewLocked()
		f.mu.Unlock()
		return view, err
	}
	f.mu.Unlock()

	if _, err := f.deps.auth.Authenticate(ctx, creds); err != nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.formError = infra.MessageOf(err)
		return f.viewLocked(), err
	}

	return f.Check(ctx)
}

// Edit applies p to the form of the signed-in user. Fields entered under
// another account are dropped before the patch lands.
func (f *ReservationFlow) Edit(ctx context.Context, p FormPatch) (FlowView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.guardEditingLocked(); err != nil {
		return f.viewLocked(), err
	}

	s, err := f.deps.sessions.Current(ctx)
	if err != nil {
		return f.viewLocked(), errs.Mark(err, ErrSessionUnavailable)
	}
	if !s.IsAuthenticated() {
		f.state = FlowUnauthenticated
		f.wipeRequesterLocked()
		return f.viewLocked(), errs.ErrAuthenticationRequired
	}
	f.adoptSessionLocked(s)

	f.editField(reservation.FieldUserName, p.UserName, &f.form.UserName)
	f.editField(reservation.FieldUserEmail, p.UserEmail, &f.form.UserEmail)
	f.editField(reservation.FieldUserPhone, p.UserPhone, &f.form.UserPhone)
	f.editField(reservation.FieldLicensePlate, p.LicensePlate, &f.form.LicensePlate)
	f.form.StartTime = patch.Coalesce(p.StartTime, f.form.StartTime)
	f.form.DurationHours = patch.Coalesce(p.DurationHours, f.form.DurationHours)
	if p.StartTime != nil {
		delete(f.fieldErrors, reservation.FieldStartTime)
	}
	if p.DurationHours != nil {
		delete(f.fieldErrors, reservation.FieldDurationHours)
	}
	f.formError = ""

	return f.viewLocked(), nil
}

// Submit validates the form and sends it at most once. Validation failures
// make no network call; a failed call leaves the form intact for a retry.
func (f *ReservationFlow) Submit(ctx context.Context) (FlowView, error) {
	f.mu.Lock()

	switch f.state {
	case FlowUnauthenticated:
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.ErrAuthenticationRequired
	case FlowSubmitting:
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.ErrSubmitInProgress
	case FlowSuccess:
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.ErrFlowFinished
	}

	s, err := f.deps.sessions.Current(ctx)
	if err != nil {
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.Mark(err, ErrSessionUnavailable)
	}
	if !s.IsAuthenticated() {
		f.state = FlowUnauthenticated
		f.wipeRequesterLocked()
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.ErrAuthenticationRequired
	}
	if f.adoptSessionLocked(s) {
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.ErrRequesterChanged
	}

	if verrs := f.form.Validate(); verrs != nil {
		f.fieldErrors = verrs
		f.formError = ""
		view := f.viewLocked()
		f.mu.Unlock()
		return view, errs.Mark(verrs, errs.ErrValidationFailed)
	}

	f.state = FlowSubmitting
	f.fieldErrors = nil
	f.formError = ""
	req := reservation.NewRequest(f.form, f.target.LotID, f.target.LotName, f.target.SpotID, f.target.SpotLabel)
	f.mu.Unlock()

	created, err := f.deps.api.CreateReservation(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.state = FlowFormEditing
		f.formError = infra.MessageOf(err)
		f.deps.logger.Warn("Reservation submit failed",
			slog.String("flow_id", f.id.String()),
			slog.Int64("spot_id", f.target.SpotID),
			slog.Any("error", err),
		)
		return f.viewLocked(), err
	}

	f.state = FlowSuccess
	f.created = &created
	f.deps.logger.Info("Reservation created",
		slog.String("flow_id", f.id.String()),
		slog.Int64("reservation_id", created.ID),
		slog.Int64("spot_id", f.target.SpotID),
	)
	return f.viewLocked(), nil
}

// Close discards the flow's data. It is refused while a submit is in flight.
func (f *ReservationFlow) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowSubmitting {
		return errs.ErrCloseWhileSubmitting
	}
	f.wipeRequesterLocked()
	f.form = reservation.Form{}
	return nil
}

func (f *ReservationFlow) guardIdleLocked() error {
	switch f.state {
	case FlowSubmitting:
		return errs.ErrSubmitInProgress
	case FlowSuccess:
		return errs.ErrFlowFinished
	}
	return nil
}

func (f *ReservationFlow) guardEditingLocked() error {
	switch f.state {
	case FlowUnauthenticated:
		return errs.ErrAuthenticationRequired
	case FlowSubmitting:
		return errs.ErrSubmitInProgress
	case FlowSuccess:
		return errs.ErrFlowFinished
	}
	return nil
}

func (f *ReservationFlow) editField(field reservation.Field, value *string, dst *string) {
	if value == nil {
		return
	}
	*dst = *value
	delete(f.fieldErrors, field)
}

// adoptSessionLocked moves the flow to FormEditing for s and pre-fills the
// empty requester fields. Fields entered under another account are wiped
// first; the result reports whether that happened.
func (f *ReservationFlow) adoptSessionLocked(s session.Session) bool {
	switched := f.filledBy.IsAuthenticated() && !f.filledBy.SameUser(s)
	if switched {
		f.wipeRequesterLocked()
	}
	if f.form.UserName == "" {
		f.form.UserName = s.UserName()
	}
	if f.form.UserEmail == "" {
		f.form.UserEmail = s.UserEmail()
	}
	f.filledBy = s
	f.state = FlowFormEditing
	return switched
}

func (f *ReservationFlow) submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == FlowSubmitting
}

func (f *ReservationFlow) wipeRequesterLocked() {
	f.form.UserName = ""
	f.form.UserEmail = ""
	f.form.UserPhone = ""
	f.form.LicensePlate = ""
	f.fieldErrors = nil
	f.formError = ""
	f.filledBy = session.Session{}
}

func (f *ReservationFlow) viewLocked() FlowView {
	view := FlowView{
		ID:        f.id,
		State:     f.state,
		Target:    f.target,
		Form:      f.form,
		FormError: f.formError,
	}
	if !f.form.StartTime.IsZero() && f.form.DurationHours > 0 {
		view.EndTime = reservation.CalculateEndTime(f.form.StartTime, f.form.DurationHours)
	}
	if len(f.fieldErrors) > 0 {
		view.FieldErrors = make(reservation.ValidationErrors, len(f.fieldErrors))
		for k, v := range f.fieldErrors {
			view.FieldErrors[k] = v
		}
	}
	if f.created != nil {
		created := *f.created
		view.Created = &created
	}
	return view
}
