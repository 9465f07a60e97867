package api

import (
	"net/http"
	"time"

	reqdto "parking-portal/internal/handler/dto/request"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationFlowHandler struct {
	flows usecase.ReservationFlows
	clock clock.Clock
	loc   *time.Location
}

func NewReservationFlowHandler(flows usecase.ReservationFlows, clk clock.Clock, cfg config.ReservationConfig) *ReservationFlowHandler {
	return &ReservationFlowHandler{
		flows: flows,
		clock: clk,
		loc:   cfg.Location(),
	}
}

// @Summary Open reservation flow
// @Description Start reserving a spot; the flow starts Unauthenticated or FormEditing depending on the session
// @Tags reservation-flows
// @Accept json
// @Produce json
// @Param request body reqdto.OpenFlowRequest true "Lot and spot"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/reservation-flows [post]
func (h *ReservationFlowHandler) Open(c *gin.Context) {
	var req reqdto.OpenFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	view, err := h.flows.Open(c.Request.Context(), req.LotID, req.SpotID)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, h.render(view))
}

// @Summary Get reservation flow
// @Description Re-check the session and return the flow
// @Tags reservation-flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /portal/reservation-flows/{id} [get]
func (h *ReservationFlowHandler) Get(c *gin.Context) {
	id, ok := parseFlowID(c)
	if !ok {
		return
	}
	view, err := h.flows.Check(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err, view)
		return
	}
	c.JSON(http.StatusOK, h.render(view))
}

// @Summary Edit reservation form
// @Description Update the fields present in the body
// @Tags reservation-flows
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.EditFlowRequest true "Changed fields"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /portal/reservation-flows/{id} [patch]
func (h *ReservationFlowHandler) Edit(c *gin.Context) {
	id, ok := parseFlowID(c)
	if !ok {
		return
	}
	var req reqdto.EditFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	p, err := req.ToPatch(h.loc)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}

	view, err := h.flows.Edit(c.Request.Context(), id, p)
	if err != nil {
		h.abort(c, err, view)
		return
	}
	c.JSON(http.StatusOK, h.render(view))
}

// @Summary Authenticate inside the flow
// @Description Sign in and move an Unauthenticated flow to FormEditing
// @Tags reservation-flows
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /portal/reservation-flows/{id}/login [post]
func (h *ReservationFlowHandler) Login(c *gin.Context) {
	id, ok := parseFlowID(c)
	if !ok {
		return
	}
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	creds, err := req.ToDomain()
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}

	view, err := h.flows.Authenticate(c.Request.Context(), id, creds)
	if err != nil {
		h.abort(c, err, view)
		return
	}
	c.JSON(http.StatusOK, h.render(view))
}

// @Summary Submit reservation
// @Description Validate the form and create the reservation on the parking API
// @Tags reservation-flows
// @Produce json
// @Param id path string true "Flow ID"
// @Success 201 {object} resdto.FlowResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/reservation-flows/{id}/submit [post]
func (h *ReservationFlowHandler) Submit(c *gin.Context) {
	id, ok := parseFlowID(c)
	if !ok {
		return
	}
	view, err := h.flows.Submit(c.Request.Context(), id)
	if err != nil {
		h.abort(c, err, view)
		return
	}
	c.JSON(http.StatusCreated, h.render(view))
}

// @Summary Close reservation flow
// @Description Discard the flow and its form data
// @Tags reservation-flows
// @Param id path string true "Flow ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /portal/reservation-flows/{id} [delete]
func (h *ReservationFlowHandler) Close(c *gin.Context) {
	id, ok := parseFlowID(c)
	if !ok {
		return
	}
	if err := h.flows.Close(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationFlowHandler) render(view usecase.FlowView) resdto.FlowResponse {
	return resdto.FromFlowView(view, h.clock.Now())
}

// abort attaches the flow to the error so the client can show field errors
// next to the inputs.
func (h *ReservationFlowHandler) abort(c *gin.Context, err error, view usecase.FlowView) {
	if view.ID == uuid.Nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	abortWithUsecaseError(c, err, h.render(view))
}

func parseFlowID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", httperr.ErrorNotification("Invalid id"))
		return uuid.Nil, false
	}
	return id, true
}
