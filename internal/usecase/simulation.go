package usecase

//go:generate mockgen -source=simulation.go -destination=../../tests/mock/usecase/mock_simulation.go -package=usecasemock

import (
	"context"
	"log/slog"
	"sync"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type SimulationState struct {
	Selected bool
	LotID    int64
	LotName  string
	Spots    []parking.Spot
	Stats    parking.Stats
	// Warning is set when the spots loaded but the stats did not.
	Warning string
}

type Simulation interface {
	State() SimulationState
	SelectLot(ctx context.Context, lotID int64) (SimulationState, error)
	Trigger(ctx context.Context, spotID int64, action parking.SimulationAction) (SimulationState, error)
	Deselect() SimulationState
}

type simulationImpl struct {
	catalog CatalogAPI
	admin   AdminAPI
	logger  *slog.Logger

	mu    sync.Mutex
	state SimulationState
	// generation changes on every selection; results of an older one are dropped.
	generation uint64
}

func NewSimulation(catalog CatalogAPI, admin AdminAPI, logger *slog.Logger) Simulation {
	return &simulationImpl{
		catalog: catalog,
		admin:   admin,
		logger:  logger,
		state:   SimulationState{Spots: []parking.Spot{}},
	}
}

func (s *simulationImpl) State() SimulationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SelectLot loads the lot's spots and stats concurrently and waits for both.
// Failing spots leave the state unchanged; failing stats only degrade to zero
// stats with a warning.
func (s *simulationImpl) SelectLot(ctx context.Context, lotID int64) (SimulationState, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	var (
		lot      parking.Lot
		stats    parking.Stats
		statsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lot, err = s.catalog.GetLot(gctx, lotID)
		return err
	})
	g.Go(func() error {
		stats, statsErr = s.admin.LotStats(gctx, lotID)
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("Simulation lot selection failed", slog.Int64("lot_id", lotID), slog.Any("error", err))
		return s.State(), errs.Mark(err, errs.ErrFetchFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.Debug("Dropping superseded lot selection", slog.Int64("lot_id", lotID))
		return s.snapshotLocked(), nil
	}

	next := SimulationState{
		Selected: true,
		LotID:    lotID,
		LotName:  lot.Name,
		Spots:    lot.Spots,
		Stats:    stats,
	}
	if statsErr != nil {
		next.Stats = parking.Stats{}
		next.Warning = "statistics unavailable: " + infra.MessageOf(statsErr)
		s.logger.Warn("Simulation stats unavailable", slog.Int64("lot_id", lotID), slog.Any("error", statsErr))
	}
	if next.Spots == nil {
		next.Spots = []parking.Spot{}
	}
	s.state = next

	return s.snapshotLocked(), nil
}

// Trigger forwards the action whatever the spot's status; the parking API
// decides. The spot list is then replaced by exactly what the API returns.
func (s *simulationImpl) Trigger(ctx context.Context, spotID int64, action parking.SimulationAction) (SimulationState, error) {
	if !action.IsValid() {
		return s.State(), errs.ErrUnknownAction
	}

	s.mu.Lock()
	if !s.state.Selected {
		s.mu.Unlock()
		return s.State(), errs.ErrNoLotSelected
	}
	lotID := s.state.LotID
	gen := s.generation
	s.mu.Unlock()

	var err error
	switch action {
	case parking.ActionEnter:
		err = s.admin.SimulateEnter(ctx, spotID)
	case parking.ActionExit:
		err = s.admin.SimulateExit(ctx, spotID)
	}
	if err != nil {
		s.logger.Warn("Simulation action refused",
			slog.Int64("spot_id", spotID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)
		return s.State(), err
	}

	spots, err := s.catalog.ListSpots(ctx, lotID)
	if err != nil {
		return s.State(), errs.Mark(err, errs.ErrFetchFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen == s.generation && s.state.Selected && s.state.LotID == lotID {
		if spots == nil {
			spots = []parking.Spot{}
		}
		s.state.Spots = spots
	}
	return s.snapshotLocked(), nil
}

func (s *simulationImpl) Deselect() SimulationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.state = SimulationState{Spots: []parking.Spot{}}
	return s.snapshotLocked()
}

func (s *simulationImpl) snapshotLocked() SimulationState {
	out := s.state
	out.Spots = append([]parking.Spot(nil), s.state.Spots...)
	if out.Spots == nil {
		out.Spots = []parking.Spot{}
	}
	return out
}
