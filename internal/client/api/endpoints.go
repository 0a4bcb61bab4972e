package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/genfit/internal/client/models"
)

// Backend paths.
const (
	PathMe               = "/users/me"
	PathLogin            = "/auth/local"
	PathRegister         = "/auth/local/register"
	PathUserInformations = "/user-informations"
	PathHealth           = "/_health"
)

// Me fetches the signed-in user together with the onboarding record.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	q := url.Values{"populate": {"user_information"}}
	if err := c.Get(ctx, PathMe, q, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login exchanges credentials for a token. No bearer header is sent.
func (c *Client) Login(ctx context.Context, identifier, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	body := models.LoginRequest{Identifier: identifier, Password: password}
	if err := c.do(ctx, http.MethodPost, PathLogin, nil, body, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates the account and returns its first token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, PathRegister, nil, req, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitUserDetail stores the onboarding record of userID.
func (c *Client) SubmitUserDetail(ctx context.Context, userID string, detail models.UserDetail) error {
	detail.User = userID
	return c.Post(ctx, PathUserInformations, models.DataEnvelope[models.UserDetail]{Data: detail}, nil)
}

// Ping reports whether the backend answers at all.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, PathHealth, nil, nil, false, nil)
}
