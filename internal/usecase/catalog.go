package usecase

//go:generate mockgen -source=catalog.go -destination=../../tests/mock/usecase/mock_catalog.go -package=usecasemock

import (
	"context"
	"log/slog"
	"strings"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/pkg/errs"
)

type CatalogSummary struct {
	LotCount       int
	TotalSpots     int
	AvailableSpots int
	OccupancyRate  float64
}

// CatalogPage is what the lot browser renders. Summary counts every lot, not
// only the filtered ones. A failed fetch yields an empty page carrying an
// error notification.
type CatalogPage struct {
	Lots         []parking.Lot
	Summary      CatalogSummary
	Notification *Notification
}

type Catalog interface {
	ListLots(ctx context.Context) ([]parking.Lot, error)
	LoadSpots(ctx context.Context, lotID int64) ([]parking.Spot, error)
	Browse(ctx context.Context, term string) CatalogPage
}

type catalogImpl struct {
	api    CatalogAPI
	logger *slog.Logger
}

func NewCatalog(api CatalogAPI, logger *slog.Logger) Catalog {
	return &catalogImpl{
		api:    api,
		logger: logger,
	}
}

func (c *catalogImpl) ListLots(ctx context.Context) ([]parking.Lot, error) {
	lots, err := c.api.ListLots(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrFetchFailed)
	}
	return lots, nil
}

func (c *catalogImpl) LoadSpots(ctx context.Context, lotID int64) ([]parking.Spot, error) {
	spots, err := c.api.ListSpots(ctx, lotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrFetchFailed)
	}
	if spots == nil {
		spots = []parking.Spot{}
	}
	return spots, nil
}

func (c *catalogImpl) Browse(ctx context.Context, term string) CatalogPage {
	lots, err := c.ListLots(ctx)
	if err != nil {
		c.logger.Warn("Catalog fetch failed", slog.Any("error", err))
		return CatalogPage{
			Lots:         []parking.Lot{},
			Notification: errorNotification(err),
		}
	}

	filtered := FilterLots(lots, term)
	return CatalogPage{
		Lots:    filtered,
		Summary: Summarize(lots),
	}
}

// FilterLots keeps lots whose name or address contains term, ignoring case.
// A blank term returns lots itself.
func FilterLots(lots []parking.Lot, term string) []parking.Lot {
	if strings.TrimSpace(term) == "" {
		return lots
	}

	needle := strings.ToLower(term)
	out := make([]parking.Lot, 0, len(lots))
	for _, lot := range lots {
		if strings.Contains(strings.ToLower(lot.Name), needle) ||
			strings.Contains(strings.ToLower(lot.Address), needle) {
			out = append(out, lot)
		}
	}
	return out
}

func Summarize(lots []parking.Lot) CatalogSummary {
	summary := CatalogSummary{LotCount: len(lots)}
	for _, lot := range lots {
		summary.TotalSpots += lot.TotalSpots
		summary.AvailableSpots += lot.AvailableSpots
	}
	if summary.TotalSpots > 0 {
		occupied := summary.TotalSpots - summary.AvailableSpots
		summary.OccupancyRate = float64(occupied) * 100.0 / float64(summary.TotalSpots)
	}
	return summary
}
