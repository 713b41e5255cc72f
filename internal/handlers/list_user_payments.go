package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// UserPaymentLister defines the interface that the service must implement.
type UserPaymentLister interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Payment, error)
}

// NewListUserPaymentsHandler returns an HTTP handler for listing a user's payments.
// @Summary List a user's payments
// @Description Returns the user's payments, most recently created first
// @Tags payments
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} models.Payment "Payments"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get user payments"
// @Router /users/{userId}/payments [get]
func NewListUserPaymentsHandler(svc UserPaymentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			logger.Log.Errorw("failed to list user payments", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get user payments", nil)
			return
		}

		writeJSON(w, http.StatusOK, payments)
	}
}
