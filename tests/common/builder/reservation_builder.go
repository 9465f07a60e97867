//go:build unit || e2e

package builder

import (
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
)

type ReservationBuilder struct {
	r reservation.Reservation
}

func NewReservationBuilder(start time.Time) *ReservationBuilder {
	return &ReservationBuilder{r: reservation.Reservation{
		ID:            501,
		LotID:         1,
		SpotID:        101,
		UserName:      "Amina Benali",
		UserEmail:     "amina@example.com",
		LicensePlate:  "12345-A-67",
		StartTime:     start,
		EndTime:       reservation.CalculateEndTime(start, 2),
		DurationHours: 2,
		Status:        reservation.StatusConfirmed,
		SpotLabel:     "A1",
		LotName:       "Parking Agdal",
	}}
}

func (b *ReservationBuilder) With(mutate func(*reservation.Reservation)) *ReservationBuilder {
	mutate(&b.r)
	return b
}

func (b *ReservationBuilder) Build() reservation.Reservation {
	return b.r
}

// ValidForm is a form that passes validation for the given start.
func ValidForm(start time.Time) reservation.Form {
	return reservation.Form{
		UserName:      "Amina Benali",
		UserEmail:     "amina@example.com",
		UserPhone:     "0612345678",
		LicensePlate:  "12345-A-67",
		StartTime:     start,
		DurationHours: 2,
	}
}

func NewUserSession() session.Session {
	return session.New("token-user", "Amina", "amina@example.com", user.RoleUser)
}

func NewAdminSession() session.Session {
	return session.New("token-admin", "Admin", "admin@example.com", user.RoleAdmin)
}
