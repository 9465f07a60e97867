//go:build unit

package converter_test

import (
	"testing"
	"time"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/infra/apiclient/dto"
	"parking-portal/internal/infra/converter"
	"parking-portal/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loc = time.FixedZone("UTC+1", 3600)

func TestReservation(t *testing.T) {
	conv := converter.New(loc)
	amount := 20.0

	got, err := conv.Reservation(dto.Reservation{
		ID:            5,
		UserName:      "Amina Benali",
		UserEmail:     "amina@example.com",
		LicensePlate:  "12345-A-67",
		StartTime:     "2025-06-01T10:00:00",
		EndTime:       "2025-06-01T12:00:00",
		DurationHours: 2,
		Status:        "pending",
		TotalAmount:   &amount,
		PaymentStatus: "UNPAID",
		ParkingLotID:  1,
		ParkingSpotID: 11,
		SpotNumber:    "A1",
		ParkingName:   "Parking Agdal",
	})
	require.NoError(t, err)

	want := reservation.Reservation{
		ID:            5,
		LotID:         1,
		SpotID:        11,
		UserName:      "Amina Benali",
		UserEmail:     "amina@example.com",
		LicensePlate:  "12345-A-67",
		StartTime:     time.Date(2025, 6, 1, 10, 0, 0, 0, loc),
		EndTime:       time.Date(2025, 6, 1, 12, 0, 0, 0, loc),
		DurationHours: 2,
		Status:        reservation.StatusPending,
		TotalAmount:   &amount,
		PaymentStatus: "UNPAID",
		SpotLabel:     "A1",
		LotName:       "Parking Agdal",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reservation mismatch (-want +got):\n%s", diff)
	}
}

func TestReservationDerivesMissingEnd(t *testing.T) {
	got, err := converter.New(loc).Reservation(dto.Reservation{StartTime: "2025-06-01T23:00:00", DurationHours: 3})
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 6, 2, 2, 0, 0, 0, loc).Equal(got.EndTime))
}

func TestReservationRejectsBadTime(t *testing.T) {
	_, err := converter.New(loc).Reservation(dto.Reservation{ID: 3, StartTime: "yesterday"})
	assert.ErrorIs(t, err, reservation.ErrInvalidWireTime)
}

func TestReservationRequestUsesLocation(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	req := converter.New(loc).ReservationRequest(reservation.Request{
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		DurationHours: 1,
	})
	assert.Equal(t, "2025-06-01T10:00:00", req.StartTime)
	assert.Equal(t, "2025-06-01T11:00:00", req.EndTime)
}

func TestLot(t *testing.T) {
	got, err := converter.New(loc).Lot(dto.Lot{
		ID:             1,
		Name:           "Parking Agdal",
		City:           "Rabat",
		TotalSpots:     10,
		AvailableSpots: 4,
		HourlyRate:     10,
		RawSpots:       []byte(`[{"id":1}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rabat", got.City)
	assert.Equal(t, 4, got.AvailableSpots)
	assert.Nil(t, got.Spots)
}

func TestSpotUnknownStatus(t *testing.T) {
	got, err := converter.New(loc).Spot(dto.Spot{ID: 1, SpotNumber: "B2", Status: "BLOCKED"})
	require.NoError(t, err)
	assert.Equal(t, parking.SpotUnknown, got.Status)
	assert.Equal(t, "B2", got.Label)
}

func TestLotRequestSendsZeroCoordinates(t *testing.T) {
	got := converter.New(loc).LotRequest(parking.NewLot{
		Name:        "Parking Null Island",
		Address:     "Gulf of Guinea",
		City:        "Nowhere",
		Latitude:    ptr.Of(0.0),
		Longitude:   ptr.Of(-8.5),
		TotalSpots:  4,
		HourlyRate:  5,
		OpeningTime: "08:00",
		ClosingTime: "20:00",
	})

	want := dto.CreateLotRequest{
		Name:        "Parking Null Island",
		Address:     "Gulf of Guinea",
		City:        "Nowhere",
		Latitude:    0,
		Longitude:   -8.5,
		TotalSpots:  4,
		HourlyRate:  5,
		OpeningTime: "08:00",
		ClosingTime: "20:00",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lot request mismatch (-want +got):\n%s", diff)
	}
}
