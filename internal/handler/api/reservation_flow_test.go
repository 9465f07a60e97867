//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"parking-portal/internal/domain/reservation"
	"parking-portal/internal/handler/api"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/usecase"
	"parking-portal/tests/common/builder"
	"parking-portal/tests/common/httptest"
	usecasemock "parking-portal/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationFlowHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	ctrl   *gomock.Controller
	flows  *usecasemock.MockReservationFlows
	start  time.Time
	view   usecase.FlowView
}

func (s *ReservationFlowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ctrl = gomock.NewController(s.T())
	s.flows = usecasemock.NewMockReservationFlows(s.ctrl)

	cfg := config.NewTestConfig()
	s.start = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	h := api.NewReservationFlowHandler(s.flows, clock.NewMockClock(s.start), cfg.Reservation)

	s.router.POST("/portal/reservation-flows", h.Open)
	s.router.GET("/portal/reservation-flows/:id", h.Get)
	s.router.PATCH("/portal/reservation-flows/:id", h.Edit)
	s.router.DELETE("/portal/reservation-flows/:id", h.Close)
	s.router.POST("/portal/reservation-flows/:id/login", h.Login)
	s.router.POST("/portal/reservation-flows/:id/submit", h.Submit)

	s.view = usecase.FlowView{
		ID:      uuid.New(),
		State:   usecase.FlowFormEditing,
		Target:  usecase.FlowTarget{LotID: 1, LotName: "Parking Agdal", SpotID: 101, SpotLabel: "A1"},
		Form:    builder.ValidForm(s.start),
		EndTime: s.start.Add(2 * time.Hour),
	}
}

func (s *ReservationFlowHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReservationFlowHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationFlowHandlerTestSuite))
}

func (s *ReservationFlowHandlerTestSuite) path(suffix string) string {
	return "/portal/reservation-flows/" + s.view.ID.String() + suffix
}

func (s *ReservationFlowHandlerTestSuite) TestOpen() {
	url := "/portal/reservation-flows"

	s.Run("success: 201 with the flow", func() {
		s.flows.EXPECT().Open(gomock.Any(), int64(1), int64(101)).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"lotId": 1, "spotId": 101})

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.view.ID.String(), body.ID)
		s.Equal("FORM_EDITING", body.State)
		s.Equal("A1", body.SpotLabel)
		s.Equal("2025-06-01T09:30:00", body.Form.StartTime)
		s.Equal("2025-06-01T11:30:00", body.EndTime)
	})

	s.Run("error: 400 without a spot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"lotId": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 on a spot that is not available", func() {
		s.flows.EXPECT().Open(gomock.Any(), int64(1), int64(102)).Return(usecase.FlowView{}, usecase.ErrSpotNotReservable)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"lotId": 1, "spotId": 102})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "parking spot is not available")
	})
}

func (s *ReservationFlowHandlerTestSuite) TestEdit() {
	s.Run("success: startTime is read in the configured zone", func() {
		s.flows.EXPECT().Edit(gomock.Any(), s.view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, p usecase.FormPatch) (usecase.FlowView, error) {
				s.Require().NotNil(p.StartTime)
				s.Equal(time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC), *p.StartTime)
				s.Require().NotNil(p.LicensePlate)
				s.Nil(p.UserName)
				return s.view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.path(""), map[string]any{
			"startTime":    "2025-06-02T14:00:00",
			"licensePlate": "12345-A-67",
		})

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 422 on an unreadable startTime", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, s.path(""), map[string]any{"startTime": "tomorrow"})
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 400 on an invalid flow id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/portal/reservation-flows/nope", map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ReservationFlowHandlerTestSuite) TestSubmit() {
	s.Run("success: 201 with the created reservation", func() {
		done := s.view
		done.State = usecase.FlowSuccess
		created := builder.NewReservationBuilder(s.start).Build()
		done.Created = &created
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).Return(done, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("SUCCESS", body.State)
		s.Require().NotNil(body.Reservation)
		s.Equal(int64(501), body.Reservation.ID)
		s.Equal("2h", body.Reservation.Duration)
		s.True(body.Reservation.Cancellable)
	})

	s.Run("error: 422 carries the field errors in the flow", func() {
		invalid := s.view
		invalid.FieldErrors = reservation.ValidationErrors{reservation.FieldLicensePlate: "license plate is required"}
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).
			Return(invalid, errs.Mark(invalid.FieldErrors, errs.ErrValidationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		var flow resdto.FlowResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &flow))
		s.Equal(map[string]string{"licensePlate": "license plate is required"}, flow.FieldErrors)
	})

	s.Run("error: 409 while a submit is in flight", func() {
		inflight := s.view
		inflight.State = usecase.FlowSubmitting
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).Return(inflight, errs.ErrSubmitInProgress)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reservation submit already in progress")
	})

	s.Run("error: 409 with the new requester when the user changed", func() {
		switched := s.view
		switched.Form.UserName = "Youssef"
		switched.Form.UserEmail = "youssef@example.com"
		switched.Form.LicensePlate = ""
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).Return(switched, errs.ErrRequesterChanged)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "signed-in user changed, review the reservation form")
		var flow resdto.FlowResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &flow))
		s.Equal("FORM_EDITING", flow.State)
		s.Equal("youssef@example.com", flow.Form.UserEmail)
		s.Empty(flow.Form.LicensePlate)
	})

	s.Run("error: 401 when the user signed out", func() {
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).Return(s.view, errs.ErrAuthenticationRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication required")
	})

	s.Run("error: server refusal keeps its message in the flow", func() {
		failed := s.view
		failed.FormError = "Place déjà réservée"
		s.flows.EXPECT().Submit(gomock.Any(), s.view.ID).
			Return(failed, infra.NewAPIError(http.StatusConflict, "Place déjà réservée"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/submit"), nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Place déjà réservée")
		var flow resdto.FlowResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &flow))
		s.Equal("Place déjà réservée", flow.FormError)
	})
}

func (s *ReservationFlowHandlerTestSuite) TestLogin() {
	s.flows.EXPECT().Authenticate(gomock.Any(), s.view.ID, builder.NewAuthBuilder().BuildCredentials()).Return(s.view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.path("/login"), builder.NewAuthBuilder().BuildDTO())

	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *ReservationFlowHandlerTestSuite) TestGetAndClose() {
	s.Run("get", func() {
		s.flows.EXPECT().Check(gomock.Any(), s.view.ID).Return(s.view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path(""), nil)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("get unknown flow", func() {
		s.flows.EXPECT().Check(gomock.Any(), s.view.ID).Return(usecase.FlowView{}, errs.ErrFlowNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path(""), nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation flow not found")
		httptest.AssertErrorNotification(s.T(), body, "reservation flow not found")
	})

	s.Run("close", func() {
		s.flows.EXPECT().Close(gomock.Any(), s.view.ID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.path(""), nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("close while submitting", func() {
		s.flows.EXPECT().Close(gomock.Any(), s.view.ID).Return(errs.ErrCloseWhileSubmitting)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.path(""), nil)

		s.Equal(http.StatusConflict, rec.Code)
	})
}
