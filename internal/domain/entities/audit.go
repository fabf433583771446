package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Audit action types written by admin mutations.
const (
	ActionUserStatusUpdate     = "user_status_update"
	ActionVerificationApproved = "verification_approved"
	ActionVerificationRejected = "verification_rejected"
)

// AuditEntry records a single admin mutation for the audit trail.
type AuditEntry struct {
	ID               uuid.UUID       `json:"id"`
	AdminUserID      uuid.UUID       `json:"admin_user_id"`
	ActionType       string          `json:"action_type"`
	TargetPlatform   null.String     `json:"target_platform,omitempty"`
	TargetEntityType null.String     `json:"target_entity_type,omitempty"`
	TargetEntityID   null.String     `json:"target_entity_id,omitempty"`
	Details          json.RawMessage `json:"action_details,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
