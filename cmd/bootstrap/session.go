package bootstrap

import (
	"context"
	"log/slog"

	"parking-portal/internal/infra/apiclient"
	"parking-portal/internal/infra/sessionstore"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(usecase.SessionWriter)),
			fx.As(new(usecase.SessionReader)),
			fx.As(new(apiclient.SessionSource)),
		),
	),
)

func NewSessionStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (sessionstore.Store, error) {
	store, err := sessionstore.New(cfg.Session, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
