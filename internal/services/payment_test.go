package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/storage"
)

func TestPaymentService_Create_SchedulesSettlement(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := NewMockPaymentScheduler(ctrl)
	scheduler.EXPECT().SchedulePaymentProcessing(gomock.Any(), "u1")

	svc := NewPaymentService(storage.NewMemStorage(), scheduler)

	payment, err := svc.Create(ctx, models.CreatePaymentParams{
		UserID: "u1", Amount: 14900, Status: models.PaymentStatusPending,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, models.CurrencyINR, payment.Currency)
}

func TestPaymentService_Get(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := NewMockPaymentScheduler(ctrl)
	scheduler.EXPECT().SchedulePaymentProcessing(gomock.Any(), gomock.Any())

	svc := NewPaymentService(storage.NewMemStorage(), scheduler)

	created, err := svc.Create(ctx, models.CreatePaymentParams{
		UserID: "u1", Amount: 14900, Status: models.PaymentStatusPending,
	})
	require.NoError(t, err)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestPaymentService_ListByUser(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scheduler := NewMockPaymentScheduler(ctrl)
	scheduler.EXPECT().SchedulePaymentProcessing(gomock.Any(), gomock.Any()).Times(2)

	svc := NewPaymentService(storage.NewMemStorage(), scheduler)

	for _, userID := range []string{"u1", "u2"} {
		_, err := svc.Create(ctx, models.CreatePaymentParams{
			UserID: userID, Amount: 14900, Status: models.PaymentStatusPending,
		})
		require.NoError(t, err)
	}

	payments, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "u1", payments[0].UserID)
}
