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

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// @Summary Get a user
// @Description Returns the user with the given id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get user"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			logger.Log.Errorw("failed to get user", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get user", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
