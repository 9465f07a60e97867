package bootstrap

import (
	"log/slog"

	"parking-portal/internal/infra/apiclient"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/pkg/jwt"
	"parking-portal/internal/usecase"

	"go.uber.org/fx"
)

var APIClientModule = fx.Module("apiclient",
	fx.Provide(
		fx.Annotate(
			NewAPIClient,
			fx.As(new(usecase.CatalogAPI)),
			fx.As(new(usecase.ReservationAPI)),
			fx.As(new(usecase.AuthAPI)),
			fx.As(new(usecase.AdminAPI)),
		),
		jwt.NewInspector,
	),
)

func NewAPIClient(cfg config.Config, sessions apiclient.SessionSource, logger *slog.Logger) *apiclient.Client {
	return apiclient.NewClient(cfg.API, sessions, cfg.Reservation.Location(), logger)
}
