//go:build unit

package parking_test

import (
	"testing"

	"parking-portal/internal/domain/parking"

	"github.com/stretchr/testify/assert"
)

func TestSpotStatus(t *testing.T) {
	cases := []struct {
		raw        string
		want       parking.SpotStatus
		color      string
		reservable bool
		actions    []parking.SimulationAction
	}{
		{raw: "AVAILABLE", want: parking.SpotAvailable, color: "#10b981", reservable: true, actions: []parking.SimulationAction{parking.ActionEnter}},
		{raw: "occupied", want: parking.SpotOccupied, color: "#ef4444", actions: []parking.SimulationAction{parking.ActionExit}},
		{raw: "Reserved", want: parking.SpotReserved, color: "#f59e0b", actions: []parking.SimulationAction{parking.ActionExit}},
		{raw: "MAINTENANCE", want: parking.SpotMaintenance, color: "#6b7280"},
		{raw: "BROKEN", want: parking.SpotUnknown, color: "#d1d5db"},
		{raw: "", want: parking.SpotUnknown, color: "#d1d5db"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			st := parking.ParseSpotStatus(tc.raw)
			assert.Equal(t, tc.want, st)
			assert.Equal(t, tc.color, st.Color())
			assert.Equal(t, tc.reservable, st.Reservable())
			assert.ElementsMatch(t, tc.actions, st.AllowedActions())
		})
	}
}

func TestSimulationAction(t *testing.T) {
	assert.True(t, parking.ActionEnter.IsValid())
	assert.True(t, parking.ActionExit.IsValid())
	assert.False(t, parking.SimulationAction("park").IsValid())
	assert.False(t, parking.SimulationAction("").IsValid())
}
