package parking

type Spot struct {
	ID               int64
	LotID            int64
	Label            string
	Status           SpotStatus
	SpotType         string
	FloorNumber      int
	Section          string
	Accessible       bool
	Covered          bool
	ElectricCharging bool
}

func (s Spot) Reservable() bool {
	return s.Status.Reservable()
}
