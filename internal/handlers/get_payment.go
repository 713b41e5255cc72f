package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
)

// PaymentGetter defines the interface that the service must implement.
type PaymentGetter interface {
	Get(ctx context.Context, id string) (*models.Payment, error)
}

// NewGetPaymentHandler returns an HTTP handler for fetching a payment by id.
// @Summary Get a payment
// @Description Returns the payment with the given id, including its settlement status
// @Tags payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} models.Payment "Payment"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get payment"
// @Router /payments/{id} [get]
func NewGetPaymentHandler(svc PaymentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrPaymentNotFound) {
				writeError(w, http.StatusNotFound, "Payment not found", nil)
				return
			}
			logger.Log.Errorw("failed to get payment", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get payment", nil)
			return
		}

		writeJSON(w, http.StatusOK, payment)
	}
}
