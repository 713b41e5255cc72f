package simulator

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// Default delays before a scheduled job reports completion.
const (
	DefaultVideoDelay   = 2 * time.Second
	DefaultPaymentDelay = 3 * time.Second
)

// Rand is the source of randomness for simulated outcomes.
// math/rand's top-level functions satisfy it through systemRand;
// tests inject deterministic implementations.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type systemRand struct{}

func (systemRand) Intn(n int) int   { return rand.Intn(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

// Store is the subset of the record store that deferred jobs mutate.
type Store interface {
	UpdateVideoStatus(ctx context.Context, id, status string, videoURL, thumbnailURL *string, processingTime *int) (*models.Video, error)
	UpdatePaymentStatus(ctx context.Context, id, status string, transactionID *string) (*models.Payment, error)
	UpdateUserSubscription(ctx context.Context, id, status string, expiry *time.Time) (*models.User, error)
}

// Simulator emulates asynchronous video processing and payment settlement.
// Each Schedule call registers a one-shot deferred job that fires after a
// fixed delay and transitions the record to a terminal state. Jobs are
// tracked so Wait can block until every in-flight job has run to completion.
//
// A job whose record (or user) has disappeared by the time it fires is a
// silent no-op: not-found results from the store are swallowed.
type Simulator struct {
	store        Store
	rng          Rand
	now          func() time.Time
	videoDelay   time.Duration
	paymentDelay time.Duration
	wg           sync.WaitGroup
}

// New creates a Simulator backed by the given store and delays.
func New(store Store, videoDelay, paymentDelay time.Duration) *Simulator {
	return &Simulator{
		store:        store,
		rng:          systemRand{},
		now:          time.Now,
		videoDelay:   videoDelay,
		paymentDelay: paymentDelay,
	}
}

// ScheduleVideoProcessing registers a deferred job that marks the video
// completed after the configured delay. Video jobs never fail.
func (s *Simulator) ScheduleVideoProcessing(videoID string) {
	s.wg.Add(1)
	time.AfterFunc(s.videoDelay, func() {
		defer s.wg.Done()
		s.completeVideo(videoID)
	})
	logger.Log.Infow("video processing scheduled", "videoID", videoID, "delay", s.videoDelay)
}

// SchedulePaymentProcessing registers a deferred job that settles the payment
// after the configured delay: 90% of jobs complete and activate the user's
// subscription for one month, the rest fail and leave the user untouched.
func (s *Simulator) SchedulePaymentProcessing(paymentID, userID string) {
	s.wg.Add(1)
	time.AfterFunc(s.paymentDelay, func() {
		defer s.wg.Done()
		s.settlePayment(paymentID, userID)
	})
	logger.Log.Infow("payment processing scheduled", "paymentID", paymentID, "delay", s.paymentDelay)
}

// Wait blocks until all scheduled jobs have finished. Called at shutdown so
// in-flight jobs run to completion rather than being dropped.
func (s *Simulator) Wait() {
	s.wg.Wait()
}

func (s *Simulator) completeVideo(videoID string) {
	ctx := context.Background()

	// Matches the original generator floor(random()*300)+60: integers in
	// [60, 359]. Kept as-is for wire compatibility.
	processingTime := s.rng.Intn(300) + 60
	videoURL := fmt.Sprintf("https://example.com/videos/%s.mp4", videoID)
	thumbnailURL := fmt.Sprintf("https://example.com/thumbnails/%s.jpg", videoID)

	video, err := s.store.UpdateVideoStatus(ctx, videoID, models.VideoStatusCompleted, &videoURL, &thumbnailURL, &processingTime)
	if err != nil {
		logger.Log.Errorw("failed to complete video", "videoID", videoID, "err", err)
		return
	}
	if video == nil {
		logger.Log.Warnw("video gone before processing finished", "videoID", videoID)
		return
	}
	logger.Log.Infow("video processing completed", "videoID", videoID, "processingTime", processingTime)
}

func (s *Simulator) settlePayment(paymentID, userID string) {
	ctx := context.Background()

	success := s.rng.Float64() > 0.1
	if !success {
		payment, err := s.store.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusFailed, nil)
		if err != nil {
			logger.Log.Errorw("failed to mark payment failed", "paymentID", paymentID, "err", err)
			return
		}
		if payment == nil {
			logger.Log.Warnw("payment gone before settlement", "paymentID", paymentID)
			return
		}
		logger.Log.Infow("payment failed", "paymentID", paymentID)
		return
	}

	transactionID := fmt.Sprintf("txn_%d", s.now().UnixMilli())
	payment, err := s.store.UpdatePaymentStatus(ctx, paymentID, models.PaymentStatusCompleted, &transactionID)
	if err != nil {
		logger.Log.Errorw("failed to complete payment", "paymentID", paymentID, "err", err)
		return
	}
	if payment == nil {
		logger.Log.Warnw("payment gone before settlement", "paymentID", paymentID)
		return
	}

	expiry := s.now().AddDate(0, 1, 0)
	user, err := s.store.UpdateUserSubscription(ctx, userID, models.SubscriptionActive, &expiry)
	if err != nil {
		logger.Log.Errorw("failed to activate subscription", "userID", userID, "err", err)
		return
	}
	if user == nil {
		logger.Log.Warnw("user gone before subscription activation", "userID", userID)
		return
	}
	logger.Log.Infow("payment completed", "paymentID", paymentID, "transactionID", transactionID, "userID", userID)
}
