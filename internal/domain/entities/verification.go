package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus is the review state of a verification item.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationInReview VerificationStatus = "in_review"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// Terminal reports whether the status can never change again.
func (s VerificationStatus) Terminal() bool {
	return s == VerificationApproved || s == VerificationRejected
}

// CanTransitionTo enforces the one-directional review flow:
// pending -> in_review -> {approved, rejected}.
func (s VerificationStatus) CanTransitionTo(next VerificationStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case VerificationInReview:
		return s == VerificationPending
	case VerificationApproved, VerificationRejected:
		return s == VerificationPending || s == VerificationInReview
	}
	return false
}

// VerificationItem is a pending or resolved identity-check request submitted
// by a platform user. Documents is carried as an opaque blob; the backend
// may attach fields this console does not interpret.
type VerificationItem struct {
	ID               uuid.UUID          `json:"id"`
	PlatformID       uuid.UUID          `json:"platform_id"`
	UserID           uuid.UUID          `json:"user_id"`
	PlatformUserID   string             `json:"platform_user_id"`
	VerificationType string             `json:"verification_type"`
	Status           VerificationStatus `json:"status"`
	Documents        json.RawMessage    `json:"documents"`
	ReviewedBy       null.String        `json:"reviewed_by,omitempty"`
	ReviewedAt       null.Time          `json:"reviewed_at,omitempty"`
	ReviewNotes      null.String        `json:"review_notes,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// VerificationDetail is a queue item joined with its unified user and
// source platform for the review screen. User and Platform may be nil
// when the referenced rows are gone.
type VerificationDetail struct {
	VerificationItem
	User     *User     `json:"user,omitempty"`
	Platform *Platform `json:"platform,omitempty"`
}

// ApproveVerificationInput carries the mandatory reviewer notes.
type ApproveVerificationInput struct {
	Notes string `json:"notes" binding:"required"`
}

// RejectVerificationInput carries the mandatory rejection reason and
// optional notes.
type RejectVerificationInput struct {
	Reason string      `json:"reason" binding:"required"`
	Notes  null.String `json:"notes"`
}

// VerificationStatistics holds aggregate queue counts, recomputed on fetch.
type VerificationStatistics struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	InReview int64 `json:"in_review"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
