package usecase

//go:generate mockgen -source=admin.go -destination=../../tests/mock/usecase/mock_admin.go -package=usecasemock

import (
	"context"
	"log/slog"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// LotOverview pairs a lot with its stats. StatsError is set instead of
// failing the whole overview when one lot's stats cannot be fetched.
type LotOverview struct {
	Lot        parking.Lot
	Stats      parking.Stats
	StatsError string
}

type AdminLots interface {
	CreateLot(ctx context.Context, lot parking.NewLot) error
	Overview(ctx context.Context) ([]LotOverview, error)
}

type adminLotsImpl struct {
	catalog     CatalogAPI
	admin       AdminAPI
	sessions    SessionReader
	concurrency int
	logger      *slog.Logger
}

func NewAdminLots(catalog CatalogAPI, admin AdminAPI, sessions SessionReader, cfg config.AdminConfig, logger *slog.Logger) AdminLots {
	concurrency := cfg.StatsConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &adminLotsImpl{
		catalog:     catalog,
		admin:       admin,
		sessions:    sessions,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (a *adminLotsImpl) CreateLot(ctx context.Context, lot parking.NewLot) error {
	if _, err := requireAdmin(ctx, a.sessions); err != nil {
		return err
	}

	if err := lot.Validate(); err != nil {
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	lot = lot.Normalized()

	if err := a.admin.CreateLot(ctx, lot); err != nil {
		return err
	}
	a.logger.Info("Parking lot created", slog.String("name", lot.Name), slog.String("city", lot.City))
	return nil
}

// Overview lists every lot with its stats, fetching at most concurrency
// stats at a time. Order follows the lot list.
func (a *adminLotsImpl) Overview(ctx context.Context) ([]LotOverview, error) {
	if _, err := requireAdmin(ctx, a.sessions); err != nil {
		return nil, err
	}

	lots, err := a.catalog.ListLots(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrFetchFailed)
	}

	out := make([]LotOverview, len(lots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, lot := range lots {
		g.Go(func() error {
			stats, err := a.admin.LotStats(gctx, lot.ID)
			entry := LotOverview{Lot: lot, Stats: stats}
			if err != nil {
				a.logger.Warn("Lot stats unavailable", slog.Int64("lot_id", lot.ID), slog.Any("error", err))
				entry.Stats = parking.Stats{}
				entry.StatsError = infra.MessageOf(err)
			}
			out[i] = entry
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}
