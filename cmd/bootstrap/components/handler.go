package components

import (
	"parking-portal/internal/handler"
	"parking-portal/internal/handler/api"
	"parking-portal/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewSessionHandler,
		api.NewReservationFlowHandler,
		api.NewReservationHandler,
		api.NewAdminHandler,
		middleware.NewSessionMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
