package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sbilibin2017/ai-video-studio/internal/logger"
	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// UserStore defines the store operations used by UserService.
type UserStore interface {
	CreateUser(ctx context.Context, p models.CreateUserParams) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserSubscription(ctx context.Context, id, status string, expiry *time.Time) (*models.User, error)
}

// UserService handles user creation, lookup and subscription changes.
type UserService struct {
	store UserStore

	// createMu serializes the uniqueness check with the insert.
	createMu sync.Mutex
}

// NewUserService creates a new UserService instance.
func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// Create registers a new user. Username and email must be unique.
func (svc *UserService) Create(ctx context.Context, p models.CreateUserParams) (*models.User, error) {
	svc.createMu.Lock()
	defer svc.createMu.Unlock()

	existing, err := svc.store.GetUserByEmail(ctx, p.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email uniqueness", "err", err)
		return nil, err
	}
	if existing == nil {
		existing, err = svc.store.GetUserByUsername(ctx, p.Username)
		if err != nil {
			logger.Log.Errorw("failed to check username uniqueness", "err", err)
			return nil, err
		}
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", p.Username, "email", p.Email)
		return nil, ErrUserAlreadyExists
	}

	return svc.store.CreateUser(ctx, p)
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := svc.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateSubscription sets the user's subscription status and expiry.
func (svc *UserService) UpdateSubscription(ctx context.Context, id, status string, expiry *time.Time) (*models.User, error) {
	user, err := svc.store.UpdateUserSubscription(ctx, id, status, expiry)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
