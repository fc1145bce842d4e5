package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Мок сервиса валидации токена
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*models.TokenInfo, error) {
	args := m.Called(ctx, token)
	info, _ := args.Get(0).(*models.TokenInfo)
	return info, args.Error(1)
}

// Мок провайдера активного профиля
type ProfileProviderMock struct {
	mock.Mock
}

func (m *ProfileProviderMock) Active(ctx context.Context, accountUID string) (*models.Profile, bool, error) {
	args := m.Called(ctx, accountUID)
	profile, _ := args.Get(0).(*models.Profile)
	return profile, args.Bool(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockInfo       *models.TokenInfo
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token validation error",
			authHeader:     "Bearer token",
			mockErr:        errors.New("token is malformed"),
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer validtoken",
			mockInfo:       &models.TokenInfo{AccountUID: "uid-1", Email: "viewer@example.com"},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			if tt.mockInfo != nil || tt.mockErr != nil {
				authMock.On("ValidateToken", mock.Anything, mock.Anything).
					Return(tt.mockInfo, tt.mockErr).Once()
			}

			handlerCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				assert.Equal(t, "uid-1", r.Context().Value(middlewarectx.AccountUID))
				assert.Equal(t, "viewer@example.com", r.Context().Value(middlewarectx.Email))
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.JWTMiddleware(authMock, newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)

			authMock.AssertExpectations(t)
		})
	}
}

func TestActiveProfileMiddleware(t *testing.T) {
	activeProfile := &models.Profile{ID: 5, AccountUID: "uid-1", Name: "Main"}

	tests := []struct {
		name           string
		accountUID     string
		setupMocks     func(p *ProfileProviderMock)
		wantStatusCode int
		wantProfile    *models.Profile
	}{
		{
			name:       "profile selected",
			accountUID: "uid-1",
			setupMocks: func(p *ProfileProviderMock) {
				p.On("Active", mock.Anything, "uid-1").Return(activeProfile, true, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantProfile:    activeProfile,
		},
		{
			name:       "no profile selected passes through",
			accountUID: "uid-1",
			setupMocks: func(p *ProfileProviderMock) {
				p.On("Active", mock.Anything, "uid-1").Return(nil, false, nil).Once()
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing account in context",
			accountUID:     "",
			setupMocks:     func(_ *ProfileProviderMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "session lookup failure",
			accountUID: "uid-1",
			setupMocks: func(p *ProfileProviderMock) {
				p.On("Active", mock.Anything, "uid-1").
					Return(nil, false, errors.New("redis down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerMock := new(ProfileProviderMock)
			tt.setupMocks(providerMock)

			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantProfile, middlewarectx.ProfileFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			mw := middlewarectx.ActiveProfileMiddleware(providerMock, newNoopLogger())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/catalog/content", nil)
			if tt.accountUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.AccountUID, tt.accountUID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			providerMock.AssertExpectations(t)
		})
	}
}
