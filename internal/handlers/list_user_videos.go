package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// UserVideoLister defines the interface that the service must implement.
type UserVideoLister interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Video, error)
}

// NewListUserVideosHandler returns an HTTP handler for listing a user's videos.
// @Summary List a user's videos
// @Description Returns the user's videos, most recently created first
// @Tags videos
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} models.Video "Videos"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get user videos"
// @Router /users/{userId}/videos [get]
func NewListUserVideosHandler(svc UserVideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListByUser(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			logger.Log.Errorw("failed to list user videos", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get user videos", nil)
			return
		}

		writeJSON(w, http.StatusOK, videos)
	}
}
