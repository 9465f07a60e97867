package apiclient

import (
	"context"
	"net/http"

	"parking-portal/internal/domain/session"
	"parking-portal/internal/domain/user"
	"parking-portal/internal/infra"
	"parking-portal/internal/infra/apiclient/dto"
)

func (c *Client) Authenticate(ctx context.Context, creds user.Credentials) (session.Grant, error) {
	req := dto.AuthenticateRequest{
		Email:    creds.Email().Value(),
		Password: creds.Password().Value(),
	}
	return c.auth(ctx, "/auth/authenticate", req)
}

func (c *Client) Register(ctx context.Context, reg user.Registration) (session.Grant, error) {
	req := dto.RegisterRequest{
		Firstname: reg.Firstname(),
		Lastname:  reg.Lastname(),
		Email:     reg.Email().Value(),
		Password:  reg.Password().Value(),
	}
	return c.auth(ctx, "/auth/register", req)
}

func (c *Client) auth(ctx context.Context, path string, req any) (session.Grant, error) {
	var resp dto.AuthResponse
	if err := c.do(ctx, public, http.MethodPost, path, req, &resp); err != nil {
		return session.Grant{}, err
	}
	if resp.Token == "" {
		return session.Grant{}, infra.NewAPIError(http.StatusOK, "malformed response: missing token")
	}

	grant := session.Grant{Token: resp.Token}
	if resp.User != nil {
		grant.Email = resp.User.Email
		grant.Firstname = resp.User.Firstname
		grant.Role = resp.User.Role
	}
	return grant, nil
}
