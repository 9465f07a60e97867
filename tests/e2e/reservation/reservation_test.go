//go:build e2e

package reservation_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/handler/dto/request"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/tests/common/authtest"
	"parking-portal/tests/common/httptest"
	"parking-portal/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const flowsURL = "/portal/reservation-flows"

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) openFlow(lotID, spotID int64) resdto.FlowResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowsURL,
		map[string]any{"lotId": lotID, "spotId": spotID})
	var flow resdto.FlowResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &flow)
	return flow
}

func (s *reservationSuite) spots(lotID int64) []resdto.SpotResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/portal/lots/"+strconv.FormatInt(lotID, 10)+"/spots", nil)
	var spots []resdto.SpotResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &spots)
	return spots
}

func (s *reservationSuite) reservations() []resdto.ReservationResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/portal/reservations", nil)
	var list []resdto.ReservationResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
	return list
}

func (s *reservationSuite) TestBrowse() {
	s.Run("all lots with a summary", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/portal/lots", nil)
		var page resdto.CatalogPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Len(page.Lots, 2)
		s.Equal(2, page.Summary.LotCount)
		s.Equal(5, page.Summary.TotalSpots)
		s.Equal(3, page.Summary.AvailableSpots)
		s.Nil(page.Notification)
	})

	s.Run("search matches the address", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/portal/lots?q=libert", nil)
		var page resdto.CatalogPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Lots, 1)
		s.Equal("Parking Gueliz", page.Lots[0].Name)
	})

	s.Run("spots carry their labels and reservability", func() {
		spots := s.spots(e2e.AgdalLotID)
		s.Require().Len(spots, 3)
		s.Equal("A1", spots[0].Label)
		s.True(spots[0].Reservable)
		s.False(spots[1].Reservable)
	})

	s.Run("unknown lot keeps the server 404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/portal/lots/99/spots", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Parking not found")
	})
}

func (s *reservationSuite) TestReserveAndCancel() {
	flow := s.openFlow(e2e.AgdalLotID, 101)
	s.Equal("UNAUTHENTICATED", flow.State)
	s.Equal("Parking Agdal", flow.LotName)
	s.Equal("A1", flow.SpotLabel)
	flowURL := flowsURL + "/" + flow.ID

	s.Run("submit before login is refused without an upstream call", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/submit", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Empty(s.API.Created())
	})

	s.Run("login from the dialog pre-fills the requester", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/login",
			request.LoginRequest{Email: e2e.UserEmail, Password: e2e.UserPassword})
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
		s.Equal("FORM_EDITING", flow.State)
		s.Equal("Amina", flow.Form.UserName)
		s.Equal(e2e.UserEmail, flow.Form.UserEmail)
	})

	s.Run("missing plate fails validation locally", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/submit", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Validation failed")
		s.Empty(s.API.Created())
	})

	s.Run("edit and submit sends one normalized request", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, flowURL, map[string]any{
			"userPhone":     "06 12 34 56 78",
			"licensePlate":  "12345-a-67",
			"durationHours": 3,
		})
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
		s.Empty(flow.FieldErrors)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/submit", nil)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &flow)
		s.Equal("SUCCESS", flow.State)
		s.Require().NotNil(flow.Reservation)
		s.Equal("CONFIRMED", flow.Reservation.Status)

		created := s.API.Created()
		s.Require().Len(created, 1)
		req := created[0]
		s.Equal(e2e.AgdalLotID, req.ParkingLotID)
		s.Equal(int64(101), req.ParkingSpotID)
		s.Equal("A1", req.SpotNumber)
		s.Equal("0612345678", req.UserPhone)
		s.Equal("12345-A-67", req.LicensePlate)
		s.Equal(3, req.DurationHours)

		start, err := time.Parse(reservation.WireLayout, req.StartTime)
		s.Require().NoError(err)
		end, err := time.Parse(reservation.WireLayout, req.EndTime)
		s.Require().NoError(err)
		s.Equal(3*time.Hour, end.Sub(start))
	})

	s.Run("a finished flow is gone and cannot be submitted again", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/submit", nil)
		s.Equal(http.StatusNotFound, w.Code)
		s.Len(s.API.Created(), 1)
	})

	s.Run("the spot is no longer reservable", func() {
		spots := s.spots(e2e.AgdalLotID)
		s.Equal("RESERVED", spots[0].Status)
		s.False(spots[0].Reservable)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowsURL,
			map[string]any{"lotId": e2e.AgdalLotID, "spotId": 101})
		s.Equal(http.StatusConflict, w.Code)
	})

	var reservationID int64
	s.Run("history lists the new reservation", func() {
		list := s.reservations()
		s.Require().Len(list, 1)
		s.Equal("CONFIRMED", list[0].Status)
		s.True(list[0].Cancellable)
		s.False(list[0].Expired)
		s.Equal("3h", list[0].Duration)
		reservationID = list[0].ID
	})

	s.Run("cancel marks it cancelled", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/portal/reservations/"+strconv.FormatInt(reservationID, 10)+"/cancel", nil)
		s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

		list := s.reservations()
		s.Require().Len(list, 1)
		s.Equal("CANCELLED", list[0].Status)
		s.False(list[0].Cancellable)
	})

	s.Run("a cancelled reservation cannot be cancelled again", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/portal/reservations/"+strconv.FormatInt(reservationID, 10)+"/cancel", nil)
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *reservationSuite) TestLogoutRevertsOpenFlow() {
	authtest.LoginUser(s.T(), s.Router, e2e.UserEmail, e2e.UserPassword)

	flow := s.openFlow(e2e.GuelizLotID, 202)
	s.Equal("FORM_EDITING", flow.State)
	s.Equal("Amina", flow.Form.UserName)

	authtest.LogoutUser(s.T(), s.Router)

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, flowsURL+"/"+flow.ID, nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
	s.Equal("UNAUTHENTICATED", flow.State)
	s.Empty(flow.Form.UserName)
	s.Empty(flow.Form.UserEmail)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, flowsURL+"/"+flow.ID, nil)
	s.Equal(http.StatusNoContent, w.Code)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, flowsURL+"/"+flow.ID, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *reservationSuite) TestSwitchingUserBeforeSubmit() {
	authtest.LoginUser(s.T(), s.Router, e2e.UserEmail, e2e.UserPassword)
	flow := s.openFlow(e2e.AgdalLotID, 101)
	flowURL := flowsURL + "/" + flow.ID

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, flowURL, map[string]any{
		"userPhone":    "06 12 34 56 78",
		"licensePlate": "12345-a-67",
	})
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)

	authtest.LoginUser(s.T(), s.Router, e2e.AdminEmail, e2e.AdminPassword)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowURL+"/submit", nil)
	s.Equal(http.StatusConflict, w.Code)
	s.Empty(s.API.Created())

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, flowURL, nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &flow)
	s.Equal("FORM_EDITING", flow.State)
	s.Equal("Youssef", flow.Form.UserName)
	s.Equal(e2e.AdminEmail, flow.Form.UserEmail)
	s.Empty(flow.Form.LicensePlate)
}

func (s *reservationSuite) TestReservedSpotCannotBeOpened() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, flowsURL,
		map[string]any{"lotId": e2e.GuelizLotID, "spotId": 201})
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "parking spot is not available")
}
