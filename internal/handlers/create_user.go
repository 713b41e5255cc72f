package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, p models.CreateUserParams) (*models.User, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Accepted for compatibility with the original insert shape;
	// every account starts on the free tier regardless of these fields.
	SubscriptionStatus string     `json:"subscriptionStatus" validate:"omitempty,oneof=free active"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a user
// @Description Creates a new account on the free tier. Username and email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user data"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user data", err)
			return
		}

		user, err := svc.Create(r.Context(), models.CreateUserParams{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusBadRequest, "Invalid user data", err)
				return
			}
			logger.Log.Errorw("failed to create user", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create user", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
