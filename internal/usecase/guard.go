package usecase

import (
	"context"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/pkg/errs"
)

func requireSession(ctx context.Context, sessions SessionReader) (session.Session, error) {
	s, err := sessions.Current(ctx)
	if err != nil {
		return session.Session{}, errs.Mark(err, ErrSessionUnavailable)
	}
	if !s.IsAuthenticated() {
		return session.Session{}, errs.ErrAuthenticationRequired
	}
	return s, nil
}

func requireAdmin(ctx context.Context, sessions SessionReader) (session.Session, error) {
	s, err := requireSession(ctx, sessions)
	if err != nil {
		return session.Session{}, err
	}
	if !s.IsAdmin() {
		return session.Session{}, errs.ErrAdminRequired
	}
	return s, nil
}
