// Package profiledelete реализует HTTP-обработчик удаления профиля.
// Последний профиль аккаунта удалить нельзя.
package profiledelete

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики удаления профиля.
type Service interface {
	Delete(ctx context.Context, accountUID string, profileID int64) error
}

// Handler обрабатывает HTTP-запросы удаления профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить профиль
// @Description Удаляет профиль текущего аккаунта вместе с его избранным.
// @Tags Profiles
// @Produce  json
// @Param id path int true "ID профиля"
// @Success 200 {object} map[string]any "Профиль удалён"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 403 {object} response.ErrorResponse "Профиль другого аккаунта"
// @Failure 404 {object} response.ErrorResponse "Профиль не найден"
// @Failure 409 {object} response.ErrorResponse "Последний профиль защищён"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profiles/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.profiledelete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	profileID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Delete(r.Context(), accountUID, profileID); err != nil {
		log.Error("failed to delete profile", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not delete profile"))
		return
	}

	log.Info("profile deleted", slog.Int64("profile_id", profileID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "profile deleted",
	}))
}
