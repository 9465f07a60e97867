package api

import (
	"net/http"

	"parking-portal/internal/domain/parking"
	reqdto "parking-portal/internal/handler/dto/request"
	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	simulation usecase.Simulation
	lots       usecase.AdminLots
}

func NewAdminHandler(simulation usecase.Simulation, lots usecase.AdminLots) *AdminHandler {
	return &AdminHandler{
		simulation: simulation,
		lots:       lots,
	}
}

// @Summary Simulation state
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.SimulationResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /portal/admin/simulation [get]
func (h *AdminHandler) Simulation(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSimulation(h.simulation.State()))
}

// @Summary Select simulation lot
// @Description Load the spots and statistics of a lot for simulation
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.SelectLotRequest true "Lot"
// @Success 200 {object} resdto.SimulationResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/admin/simulation/lot [put]
func (h *AdminHandler) SelectLot(c *gin.Context) {
	var req reqdto.SelectLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	state, err := h.simulation.SelectLot(c.Request.Context(), req.LotID)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSimulation(state))
}

// @Summary Deselect simulation lot
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.SimulationResponse
// @Router /portal/admin/simulation/lot [delete]
func (h *AdminHandler) Deselect(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSimulation(h.simulation.Deselect()))
}

// @Summary Trigger car enter or exit
// @Description Simulate a car entering or leaving a spot, then reload the spots
// @Tags admin
// @Produce json
// @Param spotId path int true "Spot ID"
// @Param action path string true "enter or exit"
// @Success 200 {object} resdto.SimulationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/admin/simulation/spots/{spotId}/{action} [post]
func (h *AdminHandler) Trigger(c *gin.Context) {
	spotID, ok := parseID(c, "spotId")
	if !ok {
		return
	}
	action := parking.SimulationAction(c.Param("action"))

	state, err := h.simulation.Trigger(c.Request.Context(), spotID, action)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSimulation(state))
}

// @Summary Create parking lot
// @Tags admin
// @Accept json
// @Param request body reqdto.CreateLotRequest true "New lot"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/admin/lots [post]
func (h *AdminHandler) CreateLot(c *gin.Context) {
	var req reqdto.CreateLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	if err := h.lots.CreateLot(c.Request.Context(), req.ToDomain()); err != nil {
		var fieldErrs parking.FieldErrors
		if errs.As(err, &fieldErrs) {
			abortWithUsecaseError(c, err, gin.H{"fieldErrors": fieldErrs})
			return
		}
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, httperr.Notification{Type: "success", Message: "Parking lot created"})
}

// @Summary Lot statistics
// @Description All lots with their occupancy and revenue
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.LotOverviewResponse
// @Failure 502 {object} httperr.Response
// @Router /portal/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	overview, err := h.lots.Overview(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverview(overview))
}
