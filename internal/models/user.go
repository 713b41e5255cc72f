package models

import "time"

// Subscription statuses
const (
	SubscriptionFree   = "free"
	SubscriptionActive = "active"
)

// User represents a registered account
type User struct {
	ID                 string     `json:"id"`                 // Unique user identifier
	Username           string     `json:"username"`           // Unique username
	Email              string     `json:"email"`              // Unique email
	SubscriptionStatus string     `json:"subscriptionStatus"` // "free" or "active"
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"` // When the active subscription ends, nil for free accounts
	CreatedAt          time.Time  `json:"createdAt"`          // Creation timestamp
}

// CreateUserParams carries the caller-supplied fields for a new user.
// Subscription fields are always reset by the store: every account starts free.
type CreateUserParams struct {
	Username string
	Email    string
}
