package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// VideoCreator defines the interface that the service must implement.
type VideoCreator interface {
	Create(ctx context.Context, p models.CreateVideoParams) (*models.Video, error)
}

// CreateVideoRequest represents the JSON body for a video generation request
// swagger:model CreateVideoRequest
type CreateVideoRequest struct {
	// Owner user id
	// required: true
	UserID string `json:"userId" validate:"required"`

	// Video title
	// required: true
	Title string `json:"title" validate:"required"`

	// Prompt / description
	// required: true
	Description string `json:"description" validate:"required"`

	// Category, e.g. "realistic" or "3d-animation"
	// required: true
	Category string `json:"category" validate:"required"`

	// Quality, defaults to 4k
	Quality string `json:"quality" validate:"omitempty,oneof=hd 4k"`

	// Requested duration in seconds
	// required: true
	Duration int `json:"duration" validate:"required,gt=0"`

	// Opaque voice configuration
	VoiceSettings json.RawMessage `json:"voiceSettings"`

	// Opaque music configuration
	MusicSettings json.RawMessage `json:"musicSettings"`
}

// NewCreateVideoHandler returns an HTTP handler for creating a video.
// The video is returned immediately in the "processing" state; a simulated
// processing job completes it later and clients poll for the result.
// @Summary Create a video
// @Description Creates a video generation request and schedules simulated processing
// @Tags videos
// @Accept json
// @Produce json
// @Param createVideoRequest body handlers.CreateVideoRequest true "Video creation request"
// @Success 200 {object} models.Video "Created video, status processing"
// @Failure 400 {object} handlers.ErrorResponse "Invalid video data"
// @Router /videos [post]
func NewCreateVideoHandler(svc VideoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateVideoRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid video data", err)
			return
		}

		video, err := svc.Create(r.Context(), models.CreateVideoParams{
			UserID:        req.UserID,
			Title:         req.Title,
			Description:   req.Description,
			Category:      req.Category,
			Quality:       req.Quality,
			Duration:      req.Duration,
			VoiceSettings: req.VoiceSettings,
			MusicSettings: req.MusicSettings,
		})
		if err != nil {
			logger.Log.Errorw("failed to create video", "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to create video", nil)
			return
		}

		writeJSON(w, http.StatusOK, video)
	}
}
