package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

// ErrPaymentNotFound is returned when a payment lookup misses.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStore defines the store operations used by PaymentService.
type PaymentStore interface {
	CreatePayment(ctx context.Context, p models.CreatePaymentParams) (*models.Payment, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	GetUserPayments(ctx context.Context, userID string) ([]*models.Payment, error)
}

// PaymentScheduler schedules the deferred settlement job for a new payment.
type PaymentScheduler interface {
	SchedulePaymentProcessing(paymentID, userID string)
}

// PaymentService handles payment creation and lookups.
type PaymentService struct {
	store     PaymentStore
	scheduler PaymentScheduler
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(store PaymentStore, scheduler PaymentScheduler) *PaymentService {
	return &PaymentService{store: store, scheduler: scheduler}
}

// Create stores a new payment and schedules its settlement job.
func (svc *PaymentService) Create(ctx context.Context, p models.CreatePaymentParams) (*models.Payment, error) {
	payment, err := svc.store.CreatePayment(ctx, p)
	if err != nil {
		return nil, err
	}
	svc.scheduler.SchedulePaymentProcessing(payment.ID, payment.UserID)
	return payment, nil
}

// Get returns the payment with the given id.
func (svc *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	payment, err := svc.store.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// ListByUser returns a user's payments, newest first.
func (svc *PaymentService) ListByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	return svc.store.GetUserPayments(ctx, userID)
}
