package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

func TestListUserVideosHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		userID       string
		mockSetup    func(m *MockUserVideoLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "two videos newest first",
			userID: "u1",
			mockSetup: func(m *MockUserVideoLister) {
				m.EXPECT().
					ListByUser(gomock.Any(), "u1").
					Return([]*models.Video{{ID: "v2"}, {ID: "v1"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "no videos",
			userID: "u2",
			mockSetup: func(m *MockUserVideoLister) {
				m.EXPECT().
					ListByUser(gomock.Any(), "u2").
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "internal error",
			userID: "u1",
			mockSetup: func(m *MockUserVideoLister) {
				m.EXPECT().
					ListByUser(gomock.Any(), "u1").
					Return(nil, errors.New("store failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserVideoLister(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/api/users/{userId}/videos", NewListUserVideosHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.userID+"/videos", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []*models.Video
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
