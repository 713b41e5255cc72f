package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// ErrVideoNotFound is returned when a video lookup misses.
var ErrVideoNotFound = errors.New("video not found")

// VideoStore defines the store operations used by VideoService.
type VideoStore interface {
	CreateVideo(ctx context.Context, p models.CreateVideoParams) (*models.Video, error)
	GetVideo(ctx context.Context, id string) (*models.Video, error)
	GetUserVideos(ctx context.Context, userID string) ([]*models.Video, error)
	GetAllVideos(ctx context.Context, limit *int) ([]*models.Video, error)
}

// VideoScheduler schedules the deferred processing job for a new video.
type VideoScheduler interface {
	ScheduleVideoProcessing(videoID string)
}

// VideoService handles video creation and lookups. Creation schedules the
// simulated processing job; the returned record is still "processing" and
// callers poll until it reaches a terminal state.
type VideoService struct {
	store     VideoStore
	scheduler VideoScheduler
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(store VideoStore, scheduler VideoScheduler) *VideoService {
	return &VideoService{store: store, scheduler: scheduler}
}

// Create stores a new video and schedules its processing job.
func (svc *VideoService) Create(ctx context.Context, p models.CreateVideoParams) (*models.Video, error) {
	video, err := svc.store.CreateVideo(ctx, p)
	if err != nil {
		return nil, err
	}
	svc.scheduler.ScheduleVideoProcessing(video.ID)
	return video, nil
}

// Get returns the video with the given id.
func (svc *VideoService) Get(ctx context.Context, id string) (*models.Video, error) {
	video, err := svc.store.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, ErrVideoNotFound
	}
	return video, nil
}

// List returns all videos, newest first, truncated to limit when non-nil.
func (svc *VideoService) List(ctx context.Context, limit *int) ([]*models.Video, error) {
	return svc.store.GetAllVideos(ctx, limit)
}

// ListByUser returns a user's videos, newest first.
func (svc *VideoService) ListByUser(ctx context.Context, userID string) ([]*models.Video, error) {
	return svc.store.GetUserVideos(ctx, userID)
}
