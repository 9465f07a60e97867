package parking

import "strings"

type SpotStatus string

const (
	SpotAvailable   SpotStatus = "AVAILABLE"
	SpotOccupied    SpotStatus = "OCCUPIED"
	SpotReserved    SpotStatus = "RESERVED"
	SpotMaintenance SpotStatus = "MAINTENANCE"
	SpotUnknown     SpotStatus = "UNKNOWN"
)

func (s SpotStatus) String() string {
	return string(s)
}

// ParseSpotStatus never fails; values the portal does not know map to SpotUnknown.
func ParseSpotStatus(raw string) SpotStatus {
	switch status := SpotStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case SpotAvailable, SpotOccupied, SpotReserved, SpotMaintenance:
		return status
	default:
		return SpotUnknown
	}
}

var statusColors = map[SpotStatus]string{
	SpotAvailable:   "#10b981",
	SpotOccupied:    "#ef4444",
	SpotReserved:    "#f59e0b",
	SpotMaintenance: "#6b7280",
}

const unknownColor = "#d1d5db"

func (s SpotStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return unknownColor
}

func (s SpotStatus) Reservable() bool {
	return s == SpotAvailable
}

type SimulationAction string

const (
	ActionEnter SimulationAction = "enter"
	ActionExit  SimulationAction = "exit"
)

func (a SimulationAction) IsValid() bool {
	return a == ActionEnter || a == ActionExit
}

// AllowedActions is what the admin grid offers for a spot. It is advice for the
// presentation layer; the parking API decides whether an action is legal.
func (s SpotStatus) AllowedActions() []SimulationAction {
	switch s {
	case SpotAvailable:
		return []SimulationAction{ActionEnter}
	case SpotOccupied, SpotReserved:
		return []SimulationAction{ActionExit}
	default:
		return nil
	}
}
