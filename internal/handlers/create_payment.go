package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// PaymentCreator defines the interface that the service must implement.
type PaymentCreator interface {
	Create(ctx context.Context, p models.CreatePaymentParams) (*models.Payment, error)
}

// CreatePaymentRequest represents the JSON body for a payment
// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	// Payer user id
	// required: true
	UserID string `json:"userId" validate:"required"`

	// Amount in the smallest currency unit (paise)
	// required: true
	// default: 14900
	Amount int `json:"amount" validate:"required,gt=0"`

	// Currency code, defaults to INR
	Currency string `json:"currency"`

	// Initial status
	// required: true
	// default: pending
	Status string `json:"status" validate:"required,oneof=pending completed failed"`

	// Payment method: "card", "upi", "netbanking"
	PaymentMethod *string `json:"paymentMethod"`

	// Transaction id, normally set by settlement
	TransactionID *string `json:"transactionId"`
}

// NewCreatePaymentHandler returns an HTTP handler for creating a payment.
// The payment is returned immediately; a simulated settlement job later moves
// it to a terminal state and, on success, activates the payer's subscription.
// @Summary Create a payment
// @Description Creates a payment and schedules simulated settlement
// @Tags payments
// @Accept json
// @Produce json
// @Param createPaymentRequest body handlers.CreatePaymentRequest true "Payment creation request"
// @Success 200 {object} models.Payment "Created payment"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payment data"
// @Router /payments [post]
func NewCreatePaymentHandler(svc PaymentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePaymentRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid payment data", err)
			return
		}

		payment, err := svc.Create(r.Context(), models.CreatePaymentParams{
			UserID:        req.UserID,
			Amount:        req.Amount,
			Currency:      req.Currency,
			Status:        req.Status,
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
		})
		if err != nil {
			logger.Log.Errorw("failed to create payment", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create payment", nil)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}
