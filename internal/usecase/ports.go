package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

import (
	"context"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
)

// SessionReader is handed to every view-model that needs to know who is signed in.
type SessionReader interface {
	Current(ctx context.Context) (session.Session, error)
}

// SessionWriter is held by the auth view-model only.
type SessionWriter interface {
	SessionReader
	Replace(ctx context.Context, next session.Session) error
	Clear(ctx context.Context) error
}

type CatalogAPI interface {
	ListLots(ctx context.Context) ([]parking.Lot, error)
	GetLot(ctx context.Context, lotID int64) (parking.Lot, error)
	ListSpots(ctx context.Context, lotID int64) ([]parking.Spot, error)
}

type ReservationAPI interface {
	CreateReservation(ctx context.Context, req reservation.Request) (reservation.Reservation, error)
	ListUserReservations(ctx context.Context, email string) ([]reservation.Reservation, error)
	CancelReservation(ctx context.Context, reservationID int64) error
}

type AuthAPI interface {
	Authenticate(ctx context.Context, creds user.Credentials) (session.Grant, error)
	Register(ctx context.Context, reg user.Registration) (session.Grant, error)
}

type AdminAPI interface {
	CreateLot(ctx context.Context, lot parking.NewLot) error
	SimulateEnter(ctx context.Context, spotID int64) error
	SimulateExit(ctx context.Context, spotID int64) error
	LotStats(ctx context.Context, lotID int64) (parking.Stats, error)
}
