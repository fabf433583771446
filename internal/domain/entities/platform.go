package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PlatformStatus is the operational state of a downstream platform.
type PlatformStatus string

const (
	PlatformActive      PlatformStatus = "active"
	PlatformMaintenance PlatformStatus = "maintenance"
	PlatformOffline     PlatformStatus = "offline"
)

// Well-known platform names.
const (
	PlatformHostDashboard    = "host_dashboard"
	PlatformAgentDashboard   = "agent_dashboard"
	PlatformCustomerPlatform = "customer_platform"
)

// Platform is a downstream product whose users and verifications are
// aggregated into this console. APIKey is stored encrypted at rest and
// only decrypted when an outbound call is made.
type Platform struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	DisplayName     string         `json:"display_name"`
	APIBaseURL      string         `json:"api_base_url"`
	APIKeyEncrypted string         `json:"-"`
	Status          PlatformStatus `json:"status"`
	LastHealthCheck null.Time      `json:"last_health_check,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}
