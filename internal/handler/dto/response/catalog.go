package response

import (
	"parking-portal/internal/domain/parking"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/usecase"
)

type LotResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots int     `json:"availableSpots"`
	OccupancyRate  float64 `json:"occupancyRate"`
	HourlyRate     float64 `json:"hourlyRate"`
	OpeningTime    string  `json:"openingTime"`
	ClosingTime    string  `json:"closingTime"`
	Status         string  `json:"status"`
}

func FromLot(l parking.Lot) LotResponse {
	return LotResponse{
		ID:             l.ID,
		Name:           l.Name,
		Address:        l.Address,
		City:           l.City,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		TotalSpots:     l.TotalSpots,
		AvailableSpots: l.AvailableSpots,
		OccupancyRate:  l.OccupancyRate(),
		HourlyRate:     l.HourlyRate,
		OpeningTime:    l.OpeningTime,
		ClosingTime:    l.ClosingTime,
		Status:         l.Status,
	}
}

func FromLots(lots []parking.Lot) []LotResponse {
	res := make([]LotResponse, len(lots))
	for i, l := range lots {
		res[i] = FromLot(l)
	}
	return res
}

type SpotResponse struct {
	ID               int64    `json:"id"`
	LotID            int64    `json:"lotId"`
	Label            string   `json:"label"`
	Status           string   `json:"status"`
	Color            string   `json:"color"`
	Reservable       bool     `json:"reservable"`
	AllowedActions   []string `json:"allowedActions"`
	SpotType         string   `json:"spotType,omitempty"`
	FloorNumber      int      `json:"floorNumber"`
	Section          string   `json:"section,omitempty"`
	Accessible       bool     `json:"accessible"`
	Covered          bool     `json:"covered"`
	ElectricCharging bool     `json:"electricCharging"`
}

func FromSpot(s parking.Spot) SpotResponse {
	actions := make([]string, 0, 1)
	for _, a := range s.Status.AllowedActions() {
		actions = append(actions, string(a))
	}
	return SpotResponse{
		ID:               s.ID,
		LotID:            s.LotID,
		Label:            s.Label,
		Status:           s.Status.String(),
		Color:            s.Status.Color(),
		Reservable:       s.Reservable(),
		AllowedActions:   actions,
		SpotType:         s.SpotType,
		FloorNumber:      s.FloorNumber,
		Section:          s.Section,
		Accessible:       s.Accessible,
		Covered:          s.Covered,
		ElectricCharging: s.ElectricCharging,
	}
}

func FromSpots(spots []parking.Spot) []SpotResponse {
	res := make([]SpotResponse, len(spots))
	for i, s := range spots {
		res[i] = FromSpot(s)
	}
	return res
}

type SummaryResponse struct {
	LotCount       int     `json:"lotCount"`
	TotalSpots     int     `json:"totalSpots"`
	AvailableSpots int     `json:"availableSpots"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

type CatalogPageResponse struct {
	Lots         []LotResponse         `json:"lots"`
	Summary      SummaryResponse       `json:"summary"`
	Notification *httperr.Notification `json:"notification,omitempty"`
}

func FromCatalogPage(p usecase.CatalogPage) CatalogPageResponse {
	return CatalogPageResponse{
		Lots: FromLots(p.Lots),
		Summary: SummaryResponse{
			LotCount:       p.Summary.LotCount,
			TotalSpots:     p.Summary.TotalSpots,
			AvailableSpots: p.Summary.AvailableSpots,
			OccupancyRate:  p.Summary.OccupancyRate,
		},
		Notification: FromNotification(p.Notification),
	}
}

func FromNotification(n *usecase.Notification) *httperr.Notification {
	if n == nil {
		return nil
	}
	return &httperr.Notification{Type: string(n.Type), Message: n.Message}
}
