package favoriteadd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Мок сервиса избранного
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Add(ctx context.Context, accountUID string, profileID, contentID int64) error {
	args := m.Called(ctx, accountUID, profileID, contentID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequest(t *testing.T, id string, accountUID string, profile *models.Profile) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/favorites/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if accountUID != "" {
		ctx = context.WithValue(ctx, middlewarectx.AccountUID, accountUID)
	}
	if profile != nil {
		ctx = context.WithValue(ctx, middlewarectx.ActiveProfile, profile)
	}
	return req.WithContext(ctx)
}

func TestAddHandler_ServeHTTP(t *testing.T) {
	activeProfile := &models.Profile{ID: 5, AccountUID: "uid-1", Name: "Main"}

	tests := []struct {
		name           string
		id             string
		accountUID     string
		profile        *models.Profile
		setupMocks     func(s *ServiceMock)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "added",
			id:         "10",
			accountUID: "uid-1",
			profile:    activeProfile,
			setupMocks: func(s *ServiceMock) {
				s.On("Add", mock.Anything, "uid-1", int64(5), int64(10)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"favorite added"`,
		},
		{
			name:           "invalid id",
			id:             "abc",
			accountUID:     "uid-1",
			profile:        activeProfile,
			setupMocks:     func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid id"`,
		},
		{
			name:           "no account in context",
			id:             "10",
			accountUID:     "",
			profile:        activeProfile,
			setupMocks:     func(_ *ServiceMock) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:           "no active profile",
			id:             "10",
			accountUID:     "uid-1",
			profile:        nil,
			setupMocks:     func(_ *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"no active profile selected"`,
		},
		{
			name:       "duplicate favorite",
			id:         "10",
			accountUID: "uid-1",
			profile:    activeProfile,
			setupMocks: func(s *ServiceMock) {
				s.On("Add", mock.Anything, "uid-1", int64(5), int64(10)).
					Return(models.ErrFavoriteExists).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   models.ErrFavoriteExists.Error(),
		},
		{
			name:       "content missing",
			id:         "999",
			accountUID: "uid-1",
			profile:    activeProfile,
			setupMocks: func(s *ServiceMock) {
				s.On("Add", mock.Anything, "uid-1", int64(5), int64(999)).
					Return(models.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   models.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			tt.setupMocks(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			req := newRequest(t, tt.id, tt.accountUID, tt.profile)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)

			serviceMock.AssertExpectations(t)
		})
	}
}
