package models

import (
	"encoding/json"
	"time"
)

// Video statuses
const (
	VideoStatusProcessing = "processing"
	VideoStatusCompleted  = "completed"
	VideoStatusFailed     = "failed"
)

// Video qualities
const (
	QualityHD = "hd"
	Quality4K = "4k"
)

// Video represents a generation request and its processing result
type Video struct {
	ID             string          `json:"id"`             // Unique video identifier
	UserID         string          `json:"userId"`         // Owner (soft reference, not enforced)
	Title          string          `json:"title"`          // Video title
	Description    string          `json:"description"`    // Prompt / description
	Category       string          `json:"category"`       // e.g. "3d-animation", "realistic", "cartoon", "motion-graphics"
	Quality        string          `json:"quality"`        // "hd" or "4k"
	Duration       int             `json:"duration"`       // Requested duration in seconds
	VoiceSettings  json.RawMessage `json:"voiceSettings"`  // Opaque voice configuration, nil when not supplied
	MusicSettings  json.RawMessage `json:"musicSettings"`  // Opaque music configuration, nil when not supplied
	Status         string          `json:"status"`         // "processing", "completed" or "failed"
	VideoURL       *string         `json:"videoUrl"`       // Set once processing completes
	ThumbnailURL   *string         `json:"thumbnailUrl"`   // Set once processing completes
	ProcessingTime *int            `json:"processingTime"` // Simulated processing time in seconds
	CreatedAt      time.Time       `json:"createdAt"`      // Creation timestamp
}

// CreateVideoParams carries the caller-supplied fields for a new video.
type CreateVideoParams struct {
	UserID        string
	Title         string
	Description   string
	Category      string
	Quality       string // defaults to 4k when empty
	Duration      int
	VoiceSettings json.RawMessage
	MusicSettings json.RawMessage
}
