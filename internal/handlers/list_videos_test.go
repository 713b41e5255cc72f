package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/ai-video-studio/internal/models"
)

func TestListVideosHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	videos := []*models.Video{
		{ID: "v2", Status: models.VideoStatusProcessing},
		{ID: "v1", Status: models.VideoStatusCompleted},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockVideoLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "no limit",
			target: "/api/videos",
			mockSetup: func(m *MockVideoLister) {
				m.EXPECT().
					List(gomock.Any(), gomock.Nil()).
					Return(videos, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "with limit",
			target: "/api/videos?limit=1",
			mockSetup: func(m *MockVideoLister) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, limit *int) ([]*models.Video, error) {
						require.NotNil(t, limit)
						assert.Equal(t, 1, *limit)
						return videos[:1], nil
					})
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "bad limit",
			target:       "/api/videos?limit=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			target: "/api/videos",
			mockSetup: func(m *MockVideoLister) {
				m.EXPECT().
					List(gomock.Any(), gomock.Nil()).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockVideoLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListVideosHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []*models.Video
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}
