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

// VideoGetter defines the interface that the service must implement.
type VideoGetter interface {
	Get(ctx context.Context, id string) (*models.Video, error)
}

// NewGetVideoHandler returns an HTTP handler for fetching a video by id.
// @Summary Get a video
// @Description Returns the video with the given id, including its processing status
// @Tags videos
// @Produce json
// @Param id path string true "Video id"
// @Success 200 {object} models.Video "Video"
// @Failure 404 {object} handlers.ErrorResponse "Video not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to get video"
// @Router /videos/{id} [get]
func NewGetVideoHandler(svc VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		video, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrVideoNotFound) {
				writeError(w, http.StatusNotFound, "Video not found", nil)
				return
			}
			logger.Log.Errorw("failed to get video", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to get video", nil)
			return
		}

		writeJSON(w, http.StatusOK, video)
	}
}
