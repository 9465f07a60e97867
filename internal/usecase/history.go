package usecase

//go:generate mockgen -source=history.go -destination=../../tests/mock/usecase/mock_history.go -package=usecasemock

import (
	"context"
	"log/slog"
	"sort"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/pkg/errs"
)

var ErrNotCancellable = errs.New("reservation cannot be cancelled")

type History interface {
	List(ctx context.Context) ([]reservation.Reservation, error)
	Cancel(ctx context.Context, reservationID int64) error
}

type historyImpl struct {
	api      ReservationAPI
	sessions SessionReader
	logger   *slog.Logger
}

func NewHistory(api ReservationAPI, sessions SessionReader, logger *slog.Logger) History {
	return &historyImpl{
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// List returns the signed-in user's reservations, most recent start first.
func (h *historyImpl) List(ctx context.Context) ([]reservation.Reservation, error) {
	s, err := requireSession(ctx, h.sessions)
	if err != nil {
		return nil, err
	}

	list, err := h.api.ListUserReservations(ctx, s.UserEmail())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrFetchFailed)
	}
	if list == nil {
		list = []reservation.Reservation{}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].StartTime.After(list[j].StartTime)
	})
	return list, nil
}

// Cancel refuses reservations the user's own list reports as no longer
// cancellable. Ids missing from the list are left to the server to judge.
// Re-listing afterwards is up to the caller.
func (h *historyImpl) Cancel(ctx context.Context, reservationID int64) error {
	s, err := requireSession(ctx, h.sessions)
	if err != nil {
		return err
	}

	list, err := h.api.ListUserReservations(ctx, s.UserEmail())
	if err != nil {
		return errs.Mark(err, errs.ErrFetchFailed)
	}
	for _, r := range list {
		if r.ID == reservationID && !r.IsCancellable() {
			return ErrNotCancellable
		}
	}

	if err := h.api.CancelReservation(ctx, reservationID); err != nil {
		h.logger.Warn("Reservation cancel failed", slog.Int64("reservation_id", reservationID), slog.Any("error", err))
		return err
	}
	h.logger.Info("Reservation cancelled", slog.Int64("reservation_id", reservationID))
	return nil
}
