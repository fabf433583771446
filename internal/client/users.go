package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"stayhub.admin/internal/domain/entities"
)

// UserListParams narrows and pages the user listing. Zero values are
// omitted from the query string.
type UserListParams struct {
	Platform      string
	UserType      string
	AccountStatus string
	Search        string
	Page          int
	Limit         int
}

// UsersPage is one page of the unified user list.
type UsersPage struct {
	Data       []*entities.User `json:"data"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// ListUsers fetches a filtered page of unified users.
func (c *Client) ListUsers(ctx context.Context, params UserListParams) (*UsersPage, error) {
	query := url.Values{}
	if params.Platform != "" {
		query.Set("platform", params.Platform)
	}
	if params.UserType != "" {
		query.Set("user_type", params.UserType)
	}
	if params.AccountStatus != "" {
		query.Set("account_status", params.AccountStatus)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var page UsersPage
	if err := c.do(ctx, http.MethodGet, "/api/v1/users", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser fetches a single unified user.
func (c *Client) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/"+id, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserStatus changes a user's account status. The reason-required
// policy for non-active statuses is enforced server-side.
func (c *Client) UpdateUserStatus(ctx context.Context, id, status, reason string) (*entities.User, error) {
	body := map[string]string{"status": status}
	if reason != "" {
		body["reason"] = reason
	}

	var resp struct {
		Data *entities.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/v1/users/"+id+"/status", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
