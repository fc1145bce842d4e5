// Package logout реализует HTTP-обработчик выхода из аккаунта.
// Выход сбрасывает выбранный профиль сессии; JWT остаётся действителен
// до истечения срока и просто отбрасывается клиентом.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
)

// Sessions описывает сброс сессии аккаунта.
type Sessions interface {
	Clear(ctx context.Context, accountUID string) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log      *slog.Logger
	sessions Sessions
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, sessions Sessions) *Handler {
	return &Handler{
		log:      log,
		sessions: sessions,
	}
}

// ServeHTTP godoc
// @Summary Выход из аккаунта
// @Description Сбрасывает выбранный профиль текущего аккаунта.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Успешный выход"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.sessions.Clear(r.Context(), accountUID); err != nil {
		log.Error("failed to clear session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("logged out", slog.String("account_uid", accountUID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out",
	}))
}
