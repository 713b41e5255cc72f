package models

import "time"

// Payment statuses
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// CurrencyINR is the default settlement currency.
const CurrencyINR = "INR"

// Payment represents a subscription payment attempt
type Payment struct {
	ID            string    `json:"id"`            // Unique payment identifier
	UserID        string    `json:"userId"`        // Payer (soft reference, not enforced)
	Amount        int       `json:"amount"`        // Amount in the smallest currency unit (paise)
	Currency      string    `json:"currency"`      // Currency code, defaults to INR
	Status        string    `json:"status"`        // "pending", "completed" or "failed"
	PaymentMethod *string   `json:"paymentMethod"` // "card", "upi", "netbanking", nil when not supplied
	TransactionID *string   `json:"transactionId"` // Set when the payment settles
	CreatedAt     time.Time `json:"createdAt"`     // Creation timestamp
}

// CreatePaymentParams carries the caller-supplied fields for a new payment.
type CreatePaymentParams struct {
	UserID        string
	Amount        int
	Currency      string // defaults to INR when empty
	Status        string
	PaymentMethod *string
	TransactionID *string
}
