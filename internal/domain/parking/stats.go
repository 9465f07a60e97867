package parking

// Stats are the aggregate counters the parking API computes for one lot.
type Stats struct {
	AvailableSpots int
	OccupiedSpots  int
	OccupancyRate  float64
	TotalRevenue   float64
}
