package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
	"github.com/sbilibin2017/ai-video-studio/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:                 "5a2b7c1d-0000-0000-0000-000000000001",
		Username:           "john",
		Email:              "john@example.com",
		SubscriptionStatus: models.SubscriptionFree,
		CreatedAt:          time.Now(),
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserCreator)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"username":"john","email":"john@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.CreateUserParams{Username: "john", Email: "john@example.com"}).
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "subscription fields accepted but ignored",
			body: `{"username":"john","email":"john@example.com","subscriptionStatus":"active"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), models.CreateUserParams{Username: "john", Email: "john@example.com"}).
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "duplicate user",
			body: `{"username":"john","email":"john@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"username":"john","email":"john@example.com"}`,
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing email",
			body:         `{"username":"john"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad email",
			body:         `{"username":"john","email":"not-an-email"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown field rejected",
			body:         `{"username":"john","email":"john@example.com","admin":true}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.User
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, user.ID, resp.ID)
				assert.Equal(t, models.SubscriptionFree, resp.SubscriptionStatus)
			} else {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp["message"])
			}
		})
	}
}
