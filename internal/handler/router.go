package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"parking-portal/internal/handler/api"
	"parking-portal/internal/handler/middleware"
	"parking-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups every portal handler so the router takes one dependency.
type Handlers struct {
	fx.In

	Catalog         *api.CatalogHandler
	Session         *api.SessionHandler
	ReservationFlow *api.ReservationFlowHandler
	Reservation     *api.ReservationHandler
	Admin           *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, sessionMiddleware *middleware.SessionMiddleware, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	portal := engine.Group("/portal")
	{
		addRoutes(portal.Group("/lots"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Catalog.Browse},
			{Method: http.MethodGet, Path: "/:id/spots", Handler: h.Catalog.Spots},
		})

		addRoutes(portal.Group("/session"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Session.Get},
			{Method: http.MethodPost, Path: "/login", Handler: h.Session.Login},
			{Method: http.MethodPost, Path: "/register", Handler: h.Session.Register},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Session.Logout},
		})

		addRoutes(portal.Group("/reservation-flows"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.ReservationFlow.Open},
			{Method: http.MethodGet, Path: "/:id", Handler: h.ReservationFlow.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.ReservationFlow.Edit},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.ReservationFlow.Close},
			{Method: http.MethodPost, Path: "/:id/login", Handler: h.ReservationFlow.Login},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.ReservationFlow.Submit},
		})

		reservations := portal.Group("/reservations")
		reservations.Use(sessionMiddleware.RequireSession())
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
		})

		admin := portal.Group("/admin")
		admin.Use(sessionMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/simulation", Handler: h.Admin.Simulation},
			{Method: http.MethodPut, Path: "/simulation/lot", Handler: h.Admin.SelectLot},
			{Method: http.MethodDelete, Path: "/simulation/lot", Handler: h.Admin.Deselect},
			{Method: http.MethodPost, Path: "/simulation/spots/:spotId/:action", Handler: h.Admin.Trigger},
			{Method: http.MethodPost, Path: "/lots", Handler: h.Admin.CreateLot},
			{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
