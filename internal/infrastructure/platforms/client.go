package platforms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to one downstream platform's admin API using its bearer
// API key. It carries no business logic; the sync job and the verification
// usecase drive it.
type Client struct {
	name       string
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a platform client. The API key must already be
// decrypted by the caller.
func NewClient(name, baseURL, apiKey string) *Client {
	return &Client{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetHTTPClient overrides the HTTP client (used for testing)
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// Name returns the platform name this client talks to.
func (c *Client) Name() string {
	return c.name
}

// PlatformUser is the user shape platforms expose on their sync endpoints.
type PlatformUser struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	UserType           string `json:"user_type"`
	FullName           string `json:"full_name,omitempty"`
	Phone              string `json:"phone,omitempty"`
	VerificationStatus string `json:"verification_status,omitempty"`
}

type usersPage struct {
	Data       []PlatformUser `json:"data"`
	TotalPages int            `json:"total_pages"`
}

// FetchUsers pulls one page of users from the platform.
func (c *Client) FetchUsers(ctx context.Context, page, limit int) ([]PlatformUser, int, error) {
	path := fmt.Sprintf("/api/admin/users?page=%d&limit=%d", page, limit)
	var out usersPage
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, 0, err
	}
	return out.Data, out.TotalPages, nil
}

// ApproveVerification propagates an approval decision to the source platform.
func (c *Client) ApproveVerification(ctx context.Context, platformUserID, notes, adminID string) error {
	body := map[string]string{"notes": notes, "reviewed_by": adminID}
	path := fmt.Sprintf("/api/admin/verifications/%s/approve", platformUserID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// RejectVerification propagates a rejection decision to the source platform.
func (c *Client) RejectVerification(ctx context.Context, platformUserID, reason, notes, adminID string) error {
	body := map[string]string{"reason": reason, "notes": notes, "reviewed_by": adminID}
	path := fmt.Sprintf("/api/admin/verifications/%s/reject", platformUserID)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// Health probes the platform's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// StatusError is a non-2xx reply from a platform.
type StatusError struct {
	Platform string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform %s returned %d: %s", e.Platform, e.Status, e.Body)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform %s request failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Platform: c.name, Status: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
