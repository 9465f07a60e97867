//go:build unit || e2e

package builder

import (
	"fmt"

	"parking-portal/internal/domain/parking"
	"parking-portal/internal/pkg/ptr"
)

type LotBuilder struct {
	lot parking.Lot
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{lot: parking.Lot{
		ID:             1,
		Name:           "Parking Agdal",
		Address:        "Avenue de France",
		City:           "Rabat",
		Latitude:       33.9991,
		Longitude:      -6.8498,
		TotalSpots:     10,
		AvailableSpots: 4,
		HourlyRate:     10,
		OpeningTime:    parking.DefaultOpeningTime,
		ClosingTime:    parking.DefaultClosingTime,
		Status:         "ACTIVE",
	}}
}

func (b *LotBuilder) With(mutate func(*parking.Lot)) *LotBuilder {
	mutate(&b.lot)
	return b
}

func (b *LotBuilder) WithID(id int64) *LotBuilder {
	b.lot.ID = id
	return b
}

func (b *LotBuilder) WithName(name, city string) *LotBuilder {
	b.lot.Name = name
	b.lot.City = city
	return b
}

func (b *LotBuilder) WithCapacity(total, available int) *LotBuilder {
	b.lot.TotalSpots = total
	b.lot.AvailableSpots = available
	return b
}

// WithSpots attaches one spot per status, labelled A1, A2, ...
func (b *LotBuilder) WithSpots(statuses ...parking.SpotStatus) *LotBuilder {
	b.lot.Spots = make([]parking.Spot, len(statuses))
	for i, st := range statuses {
		b.lot.Spots[i] = NewSpot(b.lot.ID*100+int64(i+1), b.lot.ID, fmt.Sprintf("A%d", i+1), st)
	}
	return b
}

func (b *LotBuilder) Build() parking.Lot {
	lot := b.lot
	if b.lot.Spots != nil {
		lot.Spots = append([]parking.Spot(nil), b.lot.Spots...)
	}
	return lot
}

func NewSpot(id, lotID int64, label string, status parking.SpotStatus) parking.Spot {
	return parking.Spot{
		ID:       id,
		LotID:    lotID,
		Label:    label,
		Status:   status,
		SpotType: "STANDARD",
	}
}

func NewNewLot() parking.NewLot {
	return parking.NewLot{
		Name:        "Parking Gueliz",
		Address:     "Rue de la Liberté",
		City:        "Marrakech",
		Latitude:    ptr.Of(31.6340),
		Longitude:   ptr.Of(-8.0089),
		TotalSpots:  20,
		HourlyRate:  8,
		OpeningTime: "07:00",
		ClosingTime: "22:00",
	}
}
