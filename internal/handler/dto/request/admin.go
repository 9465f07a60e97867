package request

import (
	"parking-portal/internal/domain/parking"
)

type SelectLotRequest struct {
	LotID int64 `json:"lotId" binding:"required,gt=0"`
}

type CreateLotRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	TotalSpots  int      `json:"totalSpots"`
	HourlyRate  float64  `json:"hourlyRate"`
	OpeningTime string   `json:"openingTime"`
	ClosingTime string   `json:"closingTime"`
}

func (r *CreateLotRequest) ToDomain() parking.NewLot {
	return parking.NewLot{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		TotalSpots:  r.TotalSpots,
		HourlyRate:  r.HourlyRate,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
	}
}
