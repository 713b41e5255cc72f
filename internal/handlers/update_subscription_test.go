package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
)

func TestUpdateSubscriptionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expiry := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       string
		body         string
		mockSetup    func(m *MockSubscriptionUpdater)
		expectedCode int
	}{
		{
			name:   "success with expiry",
			userID: "u1",
			body:   `{"status":"active","expiry":"2025-07-15T12:00:00Z"}`,
			mockSetup: func(m *MockSubscriptionUpdater) {
				m.EXPECT().
					UpdateSubscription(gomock.Any(), "u1", models.SubscriptionActive, gomock.Any()).
					DoAndReturn(func(_ context.Context, id, status string, e *time.Time) (*models.User, error) {
						assert.NotNil(t, e)
						assert.True(t, expiry.Equal(*e))
						return &models.User{ID: id, SubscriptionStatus: status, SubscriptionExpiry: e}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "success without expiry",
			userID: "u1",
			body:   `{"status":"free"}`,
			mockSetup: func(m *MockSubscriptionUpdater) {
				m.EXPECT().
					UpdateSubscription(gomock.Any(), "u1", models.SubscriptionFree, gomock.Nil()).
					Return(&models.User{ID: "u1", SubscriptionStatus: models.SubscriptionFree}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "extra fields are ignored",
			userID: "u1",
			body:   `{"status":"active","plan":"yearly"}`,
			mockSetup: func(m *MockSubscriptionUpdater) {
				m.EXPECT().
					UpdateSubscription(gomock.Any(), "u1", models.SubscriptionActive, gomock.Nil()).
					Return(&models.User{ID: "u1", SubscriptionStatus: models.SubscriptionActive}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "user not found",
			userID: "missing",
			body:   `{"status":"active"}`,
			mockSetup: func(m *MockSubscriptionUpdater) {
				m.EXPECT().
					UpdateSubscription(gomock.Any(), "missing", models.SubscriptionActive, gomock.Nil()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid status",
			userID:       "u1",
			body:         `{"status":"premium"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			userID:       "u1",
			body:         `{`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSubscriptionUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Post("/api/users/{id}/subscription", NewUpdateSubscriptionHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, "/api/users/"+tt.userID+"/subscription", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
