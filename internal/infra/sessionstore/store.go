package sessionstore

import (
	"context"
	"log/slog"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/pkg/config"
	"parking-portal/internal/pkg/errs"
)

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Store interface {
	Current(ctx context.Context) (session.Session, error)
	Replace(ctx context.Context, next session.Session) error
	Clear(ctx context.Context) error
	Close() error
}

func New(cfg config.SessionConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		logger.Info("Session store opened", slog.String("backend", BackendMemory))
		return NewMemoryStore(), nil
	case BackendSQLite, "":
		return OpenSQLite(cfg.DBPath, logger)
	default:
		return nil, errs.New("unknown session backend: " + cfg.Backend)
	}
}
