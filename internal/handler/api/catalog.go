package api

import (
	"net/http"
	"strconv"

	resdto "parking-portal/internal/handler/dto/response"
	"parking-portal/internal/handler/httperr"
	"parking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog usecase.Catalog
}

func NewCatalogHandler(catalog usecase.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary Browse parking lots
// @Description List parking lots filtered by name or address, with a summary over all lots
// @Tags catalog
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} resdto.CatalogPageResponse
// @Router /portal/lots [get]
func (h *CatalogHandler) Browse(c *gin.Context) {
	page := h.catalog.Browse(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, resdto.FromCatalogPage(page))
}

// @Summary List spots of a lot
// @Description List the spots of a parking lot with their display color and allowed actions
// @Tags catalog
// @Produce json
// @Param id path int true "Parking lot ID"
// @Success 200 {array} resdto.SpotResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /portal/lots/{id}/spots [get]
func (h *CatalogHandler) Spots(c *gin.Context) {
	lotID, ok := parseID(c, "id")
	if !ok {
		return
	}
	spots, err := h.catalog.LoadSpots(c.Request.Context(), lotID)
	if err != nil {
		abortWithUsecaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpots(spots))
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", httperr.ErrorNotification("Invalid id"))
		return 0, false
	}
	return id, true
}
