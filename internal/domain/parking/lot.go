package parking

import (
	"regexp"
	"sort"
	"strings"
)

// Lot is the client's last fetched view of a parking facility.
// The parking API owns it; the portal never mutates a lot locally.
type Lot struct {
	ID             int64
	Name           string
	Address        string
	City           string
	Latitude       float64
	Longitude      float64
	TotalSpots     int
	AvailableSpots int
	HourlyRate     float64
	OpeningTime    string
	ClosingTime    string
	Status         string
	Spots          []Spot
}

func (l Lot) OccupiedSpots() int {
	occupied := l.TotalSpots - l.AvailableSpots
	if occupied < 0 {
		return 0
	}
	return occupied
}

// OccupancyRate is a percentage in [0, 100].
func (l Lot) OccupancyRate() float64 {
	if l.TotalSpots <= 0 {
		return 0
	}
	return float64(l.OccupiedSpots()) * 100.0 / float64(l.TotalSpots)
}

// NewLot is the admin's request to create a lot. Coordinates are pointers
// so that 0 (the equator, the prime meridian) stays a valid value.
type NewLot struct {
	Name        string
	Address     string
	City        string
	Latitude    *float64
	Longitude   *float64
	TotalSpots  int
	HourlyRate  float64
	OpeningTime string
	ClosingTime string
}

const (
	DefaultOpeningTime = "08:00"
	DefaultClosingTime = "23:59"
)

var clockTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// FieldErrors maps a lot field to its message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "invalid parking lot: " + strings.Join(parts, ", ")
}

// Normalized trims text fields and fills in the default opening hours.
func (n NewLot) Normalized() NewLot {
	n.Name = strings.TrimSpace(n.Name)
	n.Address = strings.TrimSpace(n.Address)
	n.City = strings.TrimSpace(n.City)
	n.OpeningTime = strings.TrimSpace(n.OpeningTime)
	n.ClosingTime = strings.TrimSpace(n.ClosingTime)
	if n.OpeningTime == "" {
		n.OpeningTime = DefaultOpeningTime
	}
	if n.ClosingTime == "" {
		n.ClosingTime = DefaultClosingTime
	}
	return n
}

func (n NewLot) Validate() error {
	n = n.Normalized()
	errs := FieldErrors{}

	if n.Name == "" {
		errs["name"] = "name is required"
	}
	if n.Address == "" {
		errs["address"] = "address is required"
	}
	if n.City == "" {
		errs["city"] = "city is required"
	}
	switch {
	case n.Latitude == nil:
		errs["latitude"] = "latitude is required"
	case *n.Latitude < -90 || *n.Latitude > 90:
		errs["latitude"] = "latitude must be within [-90, 90]"
	}
	switch {
	case n.Longitude == nil:
		errs["longitude"] = "longitude is required"
	case *n.Longitude < -180 || *n.Longitude > 180:
		errs["longitude"] = "longitude must be within [-180, 180]"
	}
	if n.TotalSpots <= 0 {
		errs["totalSpots"] = "total spots must be positive"
	}
	if n.HourlyRate <= 0 {
		errs["hourlyRate"] = "hourly rate must be positive"
	}
	if !clockTime.MatchString(n.OpeningTime) {
		errs["openingTime"] = "opening time must be HH:MM"
	}
	if !clockTime.MatchString(n.ClosingTime) {
		errs["closingTime"] = "closing time must be HH:MM"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
