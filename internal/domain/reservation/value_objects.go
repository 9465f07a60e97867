package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinDurationHours = 1
	MaxDurationHours = 24

	// WireLayout is the parking API's local date-time format. It carries no zone;
	// both sides agree on the lot's time zone.
	WireLayout = "2006-01-02T15:04:05"
)

var ErrInvalidWireTime = errors.New("invalid reservation time")

// CalculateEndTime adds exactly durationHours of elapsed time to start. Across a
// daylight-saving change the wall-clock end therefore moves by the offset shift
// (01:00 + 2h on a spring-forward night reads 04:00), while end.Sub(start) stays
// durationHours hours.
func CalculateEndTime(start time.Time, durationHours int) time.Time {
	return start.Add(time.Duration(durationHours) * time.Hour)
}

func FormatWire(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(WireLayout)
}

var wireLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	WireLayout,
	"2006-01-02T15:04",
}

// ParseWire accepts the local layouts the parking API emits and RFC 3339 values.
// Zone-less values are interpreted in loc.
func ParseWire(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range wireLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWireTime, raw)
}

// FormatDuration renders 2 as "2h", 0.5 as "30min" and 1.5 as "1h30".
func FormatDuration(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%dmin", int(hours*60+0.5))
	}
	h := int(hours)
	m := int((hours-float64(h))*60 + 0.5)
	if m == 60 {
		h, m = h+1, 0
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%d", h, m)
}
