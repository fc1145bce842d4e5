package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// ProfileProvider возвращает активный профиль аккаунта, если он выбран.
type ProfileProvider interface {
	Active(ctx context.Context, accountUID string) (*models.Profile, bool, error)
}

// ActiveProfileMiddleware подставляет выбранный профиль сессии в контекст.
// Отсутствие выбранного профиля не является ошибкой: каталог доступен
// и до выбора профиля, обработчики избранного проверяют наличие сами.
func ActiveProfileMiddleware(profiles ProfileProvider, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.ActiveProfileMiddleware"
			accountUID, ok := r.Context().Value(AccountUID).(string)
			if !ok || accountUID == "" {
				log.Error("account identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("account identification missing"))
				return
			}

			profile, found, err := profiles.Active(r.Context(), accountUID)
			if err != nil {
				log.Error("failed to load active profile", sl.Err(err),
					slog.String("op", op))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}
			if !found {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ActiveProfile, profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFromContext возвращает активный профиль из контекста запроса,
// nil — если профиль не выбран.
func ProfileFromContext(ctx context.Context) *models.Profile {
	profile, ok := ctx.Value(ActiveProfile).(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}
