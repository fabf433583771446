package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserType identifies which kind of platform account a unified user is.
type UserType string

const (
	UserTypeHost     UserType = "host"
	UserTypeAgent    UserType = "agent"
	UserTypeCustomer UserType = "customer"
	UserTypeGuest    UserType = "guest"
)

// AccountStatus is the moderation state of a unified user, distinct from
// verification status.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
	AccountBanned    AccountStatus = "banned"
)

// Valid reports whether s is a known account status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountSuspended, AccountBanned:
		return true
	}
	return false
}

// User is an identity record synced from one of the downstream platforms.
// It is created by the sync job and mutated only through admin status
// updates; it is never deleted through this system.
type User struct {
	ID                 uuid.UUID     `json:"id"`
	Email              string        `json:"email"`
	PlatformID         uuid.UUID     `json:"platform_id"`
	PlatformUserID     string        `json:"platform_user_id"`
	UserType           UserType      `json:"user_type"`
	FullName           null.String   `json:"full_name,omitempty"`
	Phone              null.String   `json:"phone,omitempty"`
	VerificationStatus null.String   `json:"verification_status,omitempty"`
	AccountStatus      AccountStatus `json:"account_status"`
	LastSyncedAt       null.Time     `json:"last_synced_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
}

// UserFilter narrows a user listing. Zero values mean "no filter".
type UserFilter struct {
	Platform      string
	UserType      string
	AccountStatus string
	Search        string
}

// UpdateUserStatusInput is the payload for PATCH /users/{id}/status.
// Reason is required by policy for any status other than active.
type UpdateUserStatusInput struct {
	Status AccountStatus `json:"status" binding:"required"`
	Reason null.String   `json:"reason"`
}

// AdminUser is a staff account of the console itself.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	LastLoginAt  null.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginInput represents admin login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	Admin       *AdminUser `json:"user"`
}
