// Package middlewarectx содержит HTTP middleware приложения.
//
// JWTMiddleware проверяет наличие и валидность JWT в заголовке Authorization
// и добавляет в контекст UID и email аккаунта. ActiveProfileMiddleware
// подставляет в контекст выбранный профиль сессии. RateLimitMiddleware
// ограничивает частоту запросов.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// AccountUID — ключ для UID аккаунта в контексте.
	AccountUID Key = "account_uid"
	// Email — ключ для email аккаунта в контексте.
	Email Key = "email"
	// ActiveProfile — ключ для выбранного профиля (*models.Profile) в контексте.
	ActiveProfile Key = "active_profile"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.TokenInfo, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT
// в заголовке Authorization.
//
// Если токен валиден, добавляет UID и email аккаунта в контекст запроса,
// иначе возвращает HTTP 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			info, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), AccountUID, info.AccountUID)
			ctx = context.WithValue(ctx, Email, info.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
