package usecase

//go:generate mockgen -source=auth.go -destination=../../tests/mock/usecase/mock_auth.go -package=usecasemock

import (
	"context"
	"log/slog"
	"net/http"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/infra"
	"parking-portal/internal/pkg/errs"
	"parking-portal/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrSessionUnavailable = errs.New("session store unavailable")
)

const defaultUserName = "Utilisateur"

type Auth interface {
	Authenticate(ctx context.Context, creds user.Credentials) (session.Session, error)
	Register(ctx context.Context, reg user.Registration) (session.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (session.Session, error)
}

type authImpl struct {
	api       AuthAPI
	sessions  SessionWriter
	inspector *jwt.Inspector
	logger    *slog.Logger
}

func NewAuth(api AuthAPI, sessions SessionWriter, inspector *jwt.Inspector, logger *slog.Logger) Auth {
	return &authImpl{
		api:       api,
		sessions:  sessions,
		inspector: inspector,
		logger:    logger,
	}
}

func (a *authImpl) Authenticate(ctx context.Context, creds user.Credentials) (session.Session, error) {
	grant, err := a.api.Authenticate(ctx, creds)
	if err != nil {
		if infra.StatusOf(err) == http.StatusUnauthorized {
			return session.Session{}, errs.Mark(err, ErrInvalidCredentials)
		}
		return session.Session{}, err
	}

	name := grant.Firstname
	if name == "" {
		name = defaultUserName
	}
	return a.open(ctx, grant, name, creds.Email().Value())
}

// Register signs the new user in straight away, as the parking API answers
// with a token.
func (a *authImpl) Register(ctx context.Context, reg user.Registration) (session.Session, error) {
	grant, err := a.api.Register(ctx, reg)
	if err != nil {
		return session.Session{}, err
	}
	return a.open(ctx, grant, reg.Firstname(), reg.Email().Value())
}

func (a *authImpl) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return errs.Mark(err, ErrSessionUnavailable)
	}
	a.logger.Info("Session cleared")
	return nil
}

func (a *authImpl) Current(ctx context.Context) (session.Session, error) {
	s, err := a.sessions.Current(ctx)
	if err != nil {
		return session.Session{}, errs.Mark(err, ErrSessionUnavailable)
	}
	if !s.IsAuthenticated() {
		return s, nil
	}
	if claims, err := a.inspector.Inspect(s.Token()); err == nil {
		s = s.WithExpiry(claims.ExpiresAtTime())
	}
	return s, nil
}

// open builds the session from the grant. User details in the response win;
// the token's claims and then the submitted email fill the gaps.
func (a *authImpl) open(ctx context.Context, grant session.Grant, name, submittedEmail string) (session.Session, error) {
	email := grant.Email
	role := grant.Role

	claims, err := a.inspector.Inspect(grant.Token)
	if err != nil {
		a.logger.Debug("Token claims unreadable, using response fields only", slog.Any("error", err))
	} else {
		if role == "" {
			role = claims.Role
		}
		if email == "" {
			email = claims.SubjectEmail()
		}
	}
	if email == "" {
		email = submittedEmail
	}

	s := session.New(grant.Token, name, email, user.RoleOrDefault(role))
	if err := a.sessions.Replace(ctx, s); err != nil {
		return session.Session{}, errs.Mark(err, ErrSessionUnavailable)
	}
	if claims != nil {
		s = s.WithExpiry(claims.ExpiresAtTime())
	}

	a.logger.Info("Session opened",
		slog.String("email", s.UserEmail()),
		slog.String("role", s.Role().String()),
	)
	return s, nil
}
