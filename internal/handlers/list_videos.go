package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// VideoLister defines the interface that the service must implement.
type VideoLister interface {
	List(ctx context.Context, limit *int) ([]*models.Video, error)
}

// NewListVideosHandler returns an HTTP handler for listing all videos.
// @Summary List videos
// @Description Returns all videos, most recently created first
// @Tags videos
// @Produce json
// @Param limit query int false "Maximum number of videos to return"
// @Success 200 {array} models.Video "Videos"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get videos"
// @Router /videos [get]
func NewListVideosHandler(svc VideoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var limit *int
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid limit", err)
				return
			}
			limit = &n
		}

		videos, err := svc.List(r.Context(), limit)
		if err != nil {
			logger.Log.Errorw("failed to list videos", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get videos", nil)
			return
		}

		writeJSON(w, http.StatusOK, videos)
	}
}
