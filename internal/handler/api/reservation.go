package api

import (
	"net/http"

	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	history usecase.History
	clock   clock.Clock
}

func NewReservationHandler(history usecase.History, clk clock.Clock) *ReservationHandler {
	return &ReservationHandler{
		history: history,
		clock:   clk,
	}
}

// @Summary My reservations
// @Description List the signed-in user's reservations, most recent first
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	list, err := h.history.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(list, h.clock.Now()))
}

// @Summary Cancel reservation
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /portal/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.history.Cancel(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
