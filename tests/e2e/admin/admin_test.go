//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/tests/common/authtest"
	"parking-portal/tests/common/httptest"
	"parking-portal/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	simulationURL = "/portal/admin/simulation"
	selectLotURL  = "/portal/admin/simulation/lot"
	createLotURL  = "/portal/admin/lots"
	statsURL      = "/portal/admin/stats"
)

type adminSuite struct {
	e2e.SharedSuite
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) loginAdmin() {
	authtest.LoginUser(s.T(), s.Router, e2e.AdminEmail, e2e.AdminPassword)
}

func newLotPayload() map[string]any {
	return map[string]any{
		"name":        "  Parking Hassan  ",
		"address":     "Boulevard Hassan II",
		"city":        "Casablanca",
		"latitude":    33.5731,
		"longitude":   -7.5898,
		"totalSpots":  12,
		"hourlyRate":  6,
		"openingTime": "",
		"closingTime": "",
	}
}

func (s *adminSuite) TestAccessControl() {
	s.Run("anonymous is 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("plain user is 403", func() {
		authtest.LoginUser(s.T(), s.Router, e2e.UserEmail, e2e.UserPassword)
		defer authtest.LogoutUser(s.T(), s.Router)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createLotURL, newLotPayload())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Admin role required")
		s.Len(s.API.Lots(), 2)
	})
}

func (s *adminSuite) TestSimulation() {
	s.loginAdmin()

	s.Run("nothing selected at first", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, simulationURL, nil)
		var state resdto.SimulationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.False(state.Selected)
		s.Empty(state.Spots)
	})

	s.Run("trigger without a lot is 409", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, simulationURL+"/spots/101/enter", nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("select lot loads spots and stats", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, selectLotURL, map[string]any{"lotId": e2e.AgdalLotID})
		var state resdto.SimulationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.True(state.Selected)
		s.Equal("Parking Agdal", state.LotName)
		s.Len(state.Spots, 3)
		s.Equal(2, state.Stats.AvailableSpots)
		s.Equal(1, state.Stats.OccupiedSpots)
		s.Empty(state.Warning)
	})

	s.Run("enter occupies the spot", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, simulationURL+"/spots/101/enter", nil)
		var state resdto.SimulationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Require().Len(state.Spots, 3)
		s.Equal("OCCUPIED", state.Spots[0].Status)
		s.Equal([]string{"exit"}, state.Spots[0].AllowedActions)
	})

	s.Run("exit frees the spot", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, simulationURL+"/spots/102/exit", nil)
		var state resdto.SimulationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.Equal("AVAILABLE", state.Spots[1].Status)
	})

	s.Run("unknown action is 400", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, simulationURL+"/spots/101/park", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "unknown simulation action")
	})

	s.Run("refusal reported in a 2xx body becomes a bad gateway", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, simulationURL+"/spots/999/enter", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadGateway, "the parking API refused the operation")
	})

	s.Run("deselect clears the view", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, selectLotURL, nil)
		var state resdto.SimulationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &state)
		s.False(state.Selected)
		s.Empty(state.Spots)
	})
}

func (s *adminSuite) TestCreateLot() {
	s.loginAdmin()

	s.Run("invalid input never reaches the parking API", func() {
		payload := newLotPayload()
		payload["totalSpots"] = 0
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createLotURL, payload)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Validation failed")
		s.Len(s.API.Lots(), 2)
	})

	s.Run("valid lot is created with default hours", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, createLotURL, newLotPayload())
		var note map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &note)
		s.Equal("success", note["type"])

		lots := s.API.Lots()
		s.Require().Len(lots, 3)
		created := lots[2]
		s.Equal("Parking Hassan", created.Name)
		s.Equal(12, created.TotalSpots)
		s.NotEmpty(created.OpeningTime)
		s.NotEmpty(created.ClosingTime)
	})
}

func (s *adminSuite) TestStats() {
	s.loginAdmin()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, statsURL, nil)
	var overview []resdto.LotOverviewResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &overview)
	s.Require().Len(overview, 2)

	byName := map[string]resdto.LotOverviewResponse{}
	for _, o := range overview {
		byName[o.Lot.Name] = o
	}
	s.Require().Contains(byName, "Parking Agdal")
	s.Equal(1, byName["Parking Agdal"].Stats.OccupiedSpots)
	s.Empty(byName["Parking Agdal"].StatsError)
	s.Require().Contains(byName, "Parking Gueliz")
	s.Equal(1, byName["Parking Gueliz"].Stats.AvailableSpots)
}
