package client

import (
	"context"
	"net/http"
	"net/url"

	"stayhub.admin/internal/domain/entities"
)

// VerificationQueue fetches the review queue, optionally filtered by
// status. "all" or an empty status returns every item.
func (c *Client) VerificationQueue(ctx context.Context, status string) ([]*entities.VerificationItem, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var resp struct {
		Data []*entities.VerificationItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/verification/queue", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// VerificationDetails fetches one item with its documents blob and the
// joined user/platform records.
func (c *Client) VerificationDetails(ctx context.Context, id string) (*entities.VerificationDetail, error) {
	var detail entities.VerificationDetail
	if err := c.do(ctx, http.MethodGet, "/api/v1/verification/"+id, nil, nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ApproveVerification transitions an item to approved. Notes are
// mandatory; commands refuse to call this without them.
func (c *Client) ApproveVerification(ctx context.Context, id, notes string) (*entities.VerificationItem, error) {
	body := map[string]string{"notes": notes}

	var resp struct {
		Data *entities.VerificationItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/verification/"+id+"/approve", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RejectVerification transitions an item to rejected. Reason is
// mandatory, notes are optional.
func (c *Client) RejectVerification(ctx context.Context, id, reason, notes string) (*entities.VerificationItem, error) {
	body := map[string]string{"reason": reason}
	if notes != "" {
		body["notes"] = notes
	}

	var resp struct {
		Data *entities.VerificationItem `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/verification/"+id+"/reject", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// VerificationStatistics fetches aggregate queue counts.
func (c *Client) VerificationStatistics(ctx context.Context) (*entities.VerificationStatistics, error) {
	var stats entities.VerificationStatistics
	if err := c.do(ctx, http.MethodGet, "/api/v1/verification/statistics", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
