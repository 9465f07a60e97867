package usecase

//go:generate mockgen -source=reservation_flows.go -destination=../../tests/mock/usecase/mock_reservation_flows.go -package=usecasemock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"parking-portal/internal/domain/user"
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSpotNotFound      = errs.New("parking spot not found in lot")
	ErrSpotNotReservable = errs.New("parking spot is not available")
)

// ReservationFlows hosts the open reservation dialogs by id.
type ReservationFlows interface {
	Open(ctx context.Context, lotID, spotID int64) (FlowView, error)
	Check(ctx context.Context, id uuid.UUID) (FlowView, error)
	Authenticate(ctx context.Context, id uuid.UUID, creds user.Credentials) (FlowView, error)
	Edit(ctx context.Context, id uuid.UUID, p FormPatch) (FlowView, error)
	Submit(ctx context.Context, id uuid.UUID) (FlowView, error)
	Close(ctx context.Context, id uuid.UUID) error
}

type flowEntry struct {
	flow     *ReservationFlow
	lastSeen time.Time
}

type reservationFlowsImpl struct {
	catalog CatalogAPI
	deps    flowDeps
	idleTTL time.Duration

	mu    sync.Mutex
	flows map[uuid.UUID]*flowEntry
}

func NewReservationFlows(
	catalog CatalogAPI,
	api ReservationAPI,
	sessions SessionReader,
	auth Auth,
	clk clock.Clock,
	cfg config.ReservationConfig,
	logger *slog.Logger,
) ReservationFlows {
	return &reservationFlowsImpl{
		catalog: catalog,
		deps: flowDeps{
			sessions:        sessions,
			auth:            auth,
			api:             api,
			clock:           clk,
			defaultDuration: cfg.DefaultDurationHours,
			logger:          logger,
		},
		idleTTL: cfg.FlowIdleTTL,
		flows:   map[uuid.UUID]*flowEntry{},
	}
}

// Open resolves the lot and spot labels from the parking API, then checks
// the session once so the flow starts in the right state.
func (r *reservationFlowsImpl) Open(ctx context.Context, lotID, spotID int64) (FlowView, error) {
	lot, err := r.catalog.GetLot(ctx, lotID)
	if err != nil {
		return FlowView{}, errs.Mark(err, errs.ErrFetchFailed)
	}

	target := FlowTarget{LotID: lot.ID, LotName: lot.Name, SpotID: spotID}
	found := false
	for _, spot := range lot.Spots {
		if spot.ID != spotID {
			continue
		}
		if !spot.Reservable() {
			return FlowView{}, ErrSpotNotReservable
		}
		target.SpotLabel = spot.Label
		found = true
		break
	}
	if !found {
		return FlowView{}, ErrSpotNotFound
	}

	flow := newReservationFlow(target, r.deps)
	view, err := flow.Check(ctx)
	if err != nil {
		return FlowView{}, err
	}

	now := r.deps.clock.Now()
	r.mu.Lock()
	r.sweepLocked(now)
	r.flows[flow.ID()] = &flowEntry{flow: flow, lastSeen: now}
	r.mu.Unlock()

	r.deps.logger.Debug("Reservation flow opened",
		slog.String("flow_id", flow.ID().String()),
		slog.Int64("lot_id", lotID),
		slog.Int64("spot_id", spotID),
	)
	return view, nil
}

func (r *reservationFlowsImpl) Check(ctx context.Context, id uuid.UUID) (FlowView, error) {
	flow, err := r.get(id)
	if err != nil {
		return FlowView{}, err
	}
	return flow.Check(ctx)
}

func (r *reservationFlowsImpl) Authenticate(ctx context.Context, id uuid.UUID, creds user.Credentials) (FlowView, error) {
	flow, err := r.get(id)
	if err != nil {
		return FlowView{}, err
	}
	return flow.Authenticate(ctx, creds)
}

func (r *reservationFlowsImpl) Edit(ctx context.Context, id uuid.UUID, p FormPatch) (FlowView, error) {
	flow, err := r.get(id)
	if err != nil {
		return FlowView{}, err
	}
	return flow.Edit(ctx, p)
}

// Submit forgets the flow once it reached Success; its view is the last one.
func (r *reservationFlowsImpl) Submit(ctx context.Context, id uuid.UUID) (FlowView, error) {
	flow, err := r.get(id)
	if err != nil {
		return FlowView{}, err
	}
	view, err := flow.Submit(ctx)
	if err == nil && view.State == FlowSuccess {
		r.remove(id)
	}
	return view, err
}

func (r *reservationFlowsImpl) Close(_ context.Context, id uuid.UUID) error {
	flow, err := r.get(id)
	if err != nil {
		return err
	}
	if err := flow.Close(); err != nil {
		return err
	}

	r.remove(id)
	return nil
}

// get returns the flow and marks it as seen. A flow idle past the TTL is
// dropped and reported as not found.
func (r *reservationFlowsImpl) get(id uuid.UUID) (*ReservationFlow, error) {
	now := r.deps.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.flows[id]
	if !ok {
		return nil, errs.ErrFlowNotFound
	}
	if r.expired(entry, now) {
		delete(r.flows, id)
		r.logExpired(id)
		return nil, errs.ErrFlowNotFound
	}
	entry.lastSeen = now
	return entry.flow, nil
}

func (r *reservationFlowsImpl) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.flows, id)
	r.mu.Unlock()
}

func (r *reservationFlowsImpl) sweepLocked(now time.Time) {
	for id, entry := range r.flows {
		if r.expired(entry, now) {
			delete(r.flows, id)
			r.logExpired(id)
		}
	}
}

// A flow with a submit in flight never expires.
func (r *reservationFlowsImpl) expired(entry *flowEntry, now time.Time) bool {
	if r.idleTTL <= 0 || now.Sub(entry.lastSeen) < r.idleTTL {
		return false
	}
	return !entry.flow.submitting()
}

func (r *reservationFlowsImpl) logExpired(id uuid.UUID) {
	r.deps.logger.Debug("Reservation flow expired", slog.String("flow_id", id.String()))
}
