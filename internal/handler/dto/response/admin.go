package response

import (
	"parking-portal/internal/domain/parking"
	"parking-portal/internal/usecase"
)

type StatsResponse struct {
	AvailableSpots int     `json:"availableSpots"`
	OccupiedSpots  int     `json:"occupiedSpots"`
	OccupancyRate  float64 `json:"occupancyRate"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

func FromStats(s parking.Stats) StatsResponse {
	return StatsResponse{
		AvailableSpots: s.AvailableSpots,
		OccupiedSpots:  s.OccupiedSpots,
		OccupancyRate:  s.OccupancyRate,
		TotalRevenue:   s.TotalRevenue,
	}
}

type SimulationResponse struct {
	Selected bool           `json:"selected"`
	LotID    int64          `json:"parkingLotId,omitempty"`
	LotName  string         `json:"parkingName,omitempty"`
	Spots    []SpotResponse `json:"spots"`
	Stats    StatsResponse  `json:"stats"`
	Warning  string         `json:"warning,omitempty"`
}

func FromSimulation(s usecase.SimulationState) SimulationResponse {
	return SimulationResponse{
		Selected: s.Selected,
		LotID:    s.LotID,
		LotName:  s.LotName,
		Spots:    FromSpots(s.Spots),
		Stats:    FromStats(s.Stats),
		Warning:  s.Warning,
	}
}

type LotOverviewResponse struct {
	Lot        LotResponse   `json:"parking"`
	Stats      StatsResponse `json:"stats"`
	StatsError string        `json:"statsError,omitempty"`
}

func FromOverview(list []usecase.LotOverview) []LotOverviewResponse {
	res := make([]LotOverviewResponse, len(list))
	for i, o := range list {
		res[i] = LotOverviewResponse{
			Lot:        FromLot(o.Lot),
			Stats:      FromStats(o.Stats),
			StatsError: o.StatsError,
		}
	}
	return res
}
