package reservation

import (
	"time"
)

// Reservation is a booking as the parking API reports it. The portal creates
// reservations through a Request and only ever cancels them afterwards.
type Reservation struct {
	ID            int64
	LotID         int64
	SpotID        int64
	UserName      string
	UserEmail     string
	UserPhone     string
	LicensePlate  string
	StartTime     time.Time
	EndTime       time.Time
	DurationHours int
	Status        Status
	TotalAmount   *float64
	PaymentStatus string
	SpotLabel     string
	LotName       string
}

func (r Reservation) IsCancellable() bool {
	return r.Status.IsCancellable()
}

func (r Reservation) HasExpired(now time.Time) bool {
	if r.EndTime.IsZero() {
		return false
	}
	return now.After(r.EndTime)
}

// TimeRemaining is zero once the reservation has ended.
func (r Reservation) TimeRemaining(now time.Time) time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}
	remaining := r.EndTime.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Request is the create-reservation payload.
type Request struct {
	LotID         int64
	SpotID        int64
	UserName      string
	UserEmail     string
	UserPhone     string
	LicensePlate  string
	StartTime     time.Time
	EndTime       time.Time
	DurationHours int
	SpotLabel     string
	LotName       string
}
