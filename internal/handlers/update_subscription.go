package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
)

// SubscriptionUpdater defines the interface that the service must implement.
type SubscriptionUpdater interface {
	UpdateSubscription(ctx context.Context, id, status string, expiry *time.Time) (*models.User, error)
}

// UpdateSubscriptionRequest represents the JSON body for a subscription change
// swagger:model UpdateSubscriptionRequest
type UpdateSubscriptionRequest struct {
	// Subscription status
	// required: true
	// default: active
	Status string `json:"status" validate:"required,oneof=free active"`

	// Expiry timestamp, cleared when omitted
	Expiry *time.Time `json:"expiry"`
}

// NewUpdateSubscriptionHandler returns an HTTP handler for setting a user's subscription.
// @Summary Update a user's subscription
// @Description Sets the subscription status and expiry for the user with the given id
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateSubscriptionRequest body handlers.UpdateSubscriptionRequest true "Subscription update request"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid subscription data"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to update subscription"
// @Router /users/{id}/subscription [post]
func NewUpdateSubscriptionHandler(svc SubscriptionUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateSubscriptionRequest
		if err := decodeJSONLenient(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid subscription data", err)
			return
		}

		user, err := svc.UpdateSubscription(r.Context(), chi.URLParam(r, "id"), req.Status, req.Expiry)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			logger.Log.Errorw("failed to update subscription", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to update subscription", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
