package components

import (
	"parking-portal/internal/pkg/clock"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseViewModelsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.Reservation.Location())
	},
	func(cfg config.Config) config.ReservationConfig {
		return cfg.Reservation
	},
	func(cfg config.Config) config.AdminConfig {
		return cfg.Admin
	},
)

var usecaseViewModelsModule = fx.Module("usecase/viewmodels",
	fx.Provide(
		usecase.NewCatalog,
		usecase.NewAuth,
		usecase.NewReservationFlows,
		usecase.NewHistory,
		usecase.NewSimulation,
		usecase.NewAdminLots,
	),
)
