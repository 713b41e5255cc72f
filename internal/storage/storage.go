package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// MemStorage is the in-memory record store for users, videos and payments.
// All records live for the lifetime of the process; there is no persistence
// and no delete operation. A single RWMutex serializes writers, so at most
// one mutation is in flight at a time.
//
// Lookups return a nil record (and nil error) when the id does not exist;
// callers must check. Returned records are copies: mutating them does not
// affect the stored state.
type MemStorage struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	videos   map[string]*models.Video
	payments map[string]*models.Payment

	// seq records insertion order per id to break createdAt ties
	// deterministically when sorting listings.
	seq     map[string]uint64
	nextSeq uint64
}

// NewMemStorage creates an empty store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:    make(map[string]*models.User),
		videos:   make(map[string]*models.Video),
		payments: make(map[string]*models.Payment),
		seq:      make(map[string]uint64),
	}
}

// CreateUser stores a new user. Subscription fields in the input are ignored:
// every account starts on the free tier with no expiry.
func (s *MemStorage) CreateUser(ctx context.Context, p models.CreateUserParams) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &models.User{
		ID:                 uuid.NewString(),
		Username:           p.Username,
		Email:              p.Email,
		SubscriptionStatus: models.SubscriptionFree,
		SubscriptionExpiry: nil,
		CreatedAt:          time.Now(),
	}
	s.users[user.ID] = user
	s.seq[user.ID] = s.nextSeq
	s.nextSeq++

	logger.Log.Infow("user created", "userID", user.ID, "username", user.Username)
	return copyUser(user), nil
}

// GetUser returns the user with the given id, or nil when absent.
func (s *MemStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.users[id]), nil
}

// GetUserByEmail scans all users for a matching email. O(n) by design:
// the store is a reference implementation, not a performance target.
func (s *MemStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

// GetUserByUsername scans all users for a matching username.
func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, nil
}

// UpdateUserSubscription sets the subscription status and expiry.
// The expiry is always overwritten: passing nil clears it.
// Returns nil when the user does not exist.
func (s *MemStorage) UpdateUserSubscription(ctx context.Context, id, status string, expiry *time.Time) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	user.SubscriptionStatus = status
	if expiry != nil {
		e := *expiry
		user.SubscriptionExpiry = &e
	} else {
		user.SubscriptionExpiry = nil
	}

	logger.Log.Infow("user subscription updated", "userID", id, "status", status)
	return copyUser(user), nil
}

// CreateVideo stores a new video in the "processing" state.
// Quality defaults to 4k when empty.
func (s *MemStorage) CreateVideo(ctx context.Context, p models.CreateVideoParams) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quality := p.Quality
	if quality == "" {
		quality = models.Quality4K
	}

	video := &models.Video{
		ID:            uuid.NewString(),
		UserID:        p.UserID,
		Title:         p.Title,
		Description:   p.Description,
		Category:      p.Category,
		Quality:       quality,
		Duration:      p.Duration,
		VoiceSettings: p.VoiceSettings,
		MusicSettings: p.MusicSettings,
		Status:        models.VideoStatusProcessing,
		CreatedAt:     time.Now(),
	}
	s.videos[video.ID] = video
	s.seq[video.ID] = s.nextSeq
	s.nextSeq++

	logger.Log.Infow("video created", "videoID", video.ID, "userID", video.UserID, "title", video.Title)
	return copyVideo(video), nil
}

// GetVideo returns the video with the given id, or nil when absent.
func (s *MemStorage) GetVideo(ctx context.Context, id string) (*models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyVideo(s.videos[id]), nil
}

// GetUserVideos returns a user's videos, most recently created first.
func (s *MemStorage) GetUserVideos(ctx context.Context, userID string) ([]*models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]*models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if v.UserID == userID {
			videos = append(videos, copyVideo(v))
		}
	}
	s.sortVideos(videos)
	return videos, nil
}

// GetAllVideos returns all videos, most recently created first,
// truncated to limit entries when limit is non-nil.
func (s *MemStorage) GetAllVideos(ctx context.Context, limit *int) ([]*models.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	videos := make([]*models.Video, 0, len(s.videos))
	for _, v := range s.videos {
		videos = append(videos, copyVideo(v))
	}
	s.sortVideos(videos)
	// Non-positive limits leave the list untouched.
	if limit != nil && *limit > 0 && *limit < len(videos) {
		videos = videos[:*limit]
	}
	return videos, nil
}

// UpdateVideoStatus overwrites the status and any supplied optional fields.
// Fields passed as nil are left unchanged. Returns nil when the video
// does not exist.
func (s *MemStorage) UpdateVideoStatus(ctx context.Context, id, status string, videoURL, thumbnailURL *string, processingTime *int) (*models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, nil
	}
	video.Status = status
	if videoURL != nil {
		u := *videoURL
		video.VideoURL = &u
	}
	if thumbnailURL != nil {
		u := *thumbnailURL
		video.ThumbnailURL = &u
	}
	if processingTime != nil {
		t := *processingTime
		video.ProcessingTime = &t
	}

	logger.Log.Infow("video status updated", "videoID", id, "status", status)
	return copyVideo(video), nil
}

// CreatePayment stores a new payment. Currency defaults to INR;
// status is caller-supplied.
func (s *MemStorage) CreatePayment(ctx context.Context, p models.CreatePaymentParams) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := p.Currency
	if currency == "" {
		currency = models.CurrencyINR
	}

	payment := &models.Payment{
		ID:            uuid.NewString(),
		UserID:        p.UserID,
		Amount:        p.Amount,
		Currency:      currency,
		Status:        p.Status,
		PaymentMethod: copyString(p.PaymentMethod),
		TransactionID: copyString(p.TransactionID),
		CreatedAt:     time.Now(),
	}
	s.payments[payment.ID] = payment
	s.seq[payment.ID] = s.nextSeq
	s.nextSeq++

	logger.Log.Infow("payment created", "paymentID", payment.ID, "userID", payment.UserID, "amount", payment.Amount)
	return copyPayment(payment), nil
}

// GetPayment returns the payment with the given id, or nil when absent.
func (s *MemStorage) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPayment(s.payments[id]), nil
}

// GetUserPayments returns a user's payments, most recently created first.
func (s *MemStorage) GetUserPayments(ctx context.Context, userID string) ([]*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]*models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		if p.UserID == userID {
			payments = append(payments, copyPayment(p))
		}
	}
	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].CreatedAt.After(payments[j].CreatedAt)
		}
		return s.seq[payments[i].ID] > s.seq[payments[j].ID]
	})
	return payments, nil
}

// UpdatePaymentStatus overwrites the status and, when supplied, the
// transaction id. Returns nil when the payment does not exist.
func (s *MemStorage) UpdatePaymentStatus(ctx context.Context, id, status string, transactionID *string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, nil
	}
	payment.Status = status
	if transactionID != nil {
		t := *transactionID
		payment.TransactionID = &t
	}

	logger.Log.Infow("payment status updated", "paymentID", id, "status", status)
	return copyPayment(payment), nil
}

// sortVideos orders newest-first with ties broken by insertion order.
// Callers must hold at least the read lock.
func (s *MemStorage) sortVideos(videos []*models.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return s.seq[videos[i].ID] > s.seq[videos[j].ID]
	})
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.SubscriptionExpiry != nil {
		e := *u.SubscriptionExpiry
		c.SubscriptionExpiry = &e
	}
	return &c
}

func copyVideo(v *models.Video) *models.Video {
	if v == nil {
		return nil
	}
	c := *v
	c.VideoURL = copyString(v.VideoURL)
	c.ThumbnailURL = copyString(v.ThumbnailURL)
	if v.ProcessingTime != nil {
		t := *v.ProcessingTime
		c.ProcessingTime = &t
	}
	if v.VoiceSettings != nil {
		c.VoiceSettings = append([]byte(nil), v.VoiceSettings...)
	}
	if v.MusicSettings != nil {
		c.MusicSettings = append([]byte(nil), v.MusicSettings...)
	}
	return &c
}

func copyPayment(p *models.Payment) *models.Payment {
	if p == nil {
		return nil
	}
	c := *p
	c.PaymentMethod = copyString(p.PaymentMethod)
	c.TransactionID = copyString(p.TransactionID)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
