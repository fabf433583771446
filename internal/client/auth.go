package client

import (
	"context"
	"net/http"

	"stayhub.admin/internal/domain/entities"
)

// Login exchanges credentials for an access token and admin profile.
func (c *Client) Login(ctx context.Context, email, password string) (*entities.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result entities.LoginResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the currently authenticated admin.
func (c *Client) Me(ctx context.Context) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
