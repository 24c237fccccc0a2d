package gateway

import (
	"context"
	"net/http"

	"hotel-console/internal/infra/gateway/wire"
	"hotel-console/internal/pkg/errs"
)

var ErrEmptyToken = errs.New("login response carried no token")

type AuthClient struct {
	client   *Client
	loginURL string
}

func NewAuthClient(client *Client, loginURL string) *AuthClient {
	return &AuthClient{
		client:   client,
		loginURL: loginURL,
	}
}

func (c *AuthClient) Login(ctx context.Context, username, password string) (string, error) {
	var out wire.LoginResponse
	in := wire.LoginRequest{Username: username, Password: password}
	if err := c.client.Call(ctx, http.MethodPost, c.loginURL, in, &out); err != nil {
		return "", err
	}
	if out.Token != "" {
		return out.Token, nil
	}
	if out.AccessToken != "" {
		return out.AccessToken, nil
	}
	return "", ErrEmptyToken
}
