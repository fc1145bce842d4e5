// Package profileselect реализует HTTP-обработчик выбора активного профиля.
// Выбранный профиль запоминается в сессии и определяет видимость каталога
// и избранное для последующих запросов.
package profileselect

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

// Service описывает интерфейс бизнес-логики выбора профиля.
type Service interface {
	Select(ctx context.Context, accountUID string, profileID int64) error
}

// Handler обрабатывает HTTP-запросы выбора активного профиля.
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
// @Summary Выбрать активный профиль
// @Description Делает профиль активным для каталога и избранного.
// @Tags Profiles
// @Produce  json
// @Param id path int true "ID профиля"
// @Success 200 {object} map[string]any "Профиль выбран"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 403 {object} response.ErrorResponse "Профиль другого аккаунта"
// @Failure 404 {object} response.ErrorResponse "Профиль не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profiles/{id}/select [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.profileselect"
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

	if err := h.service.Select(r.Context(), accountUID, profileID); err != nil {
		log.Error("failed to select profile", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not select profile"))
		return
	}

	log.Info("profile selected", slog.Int64("profile_id", profileID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"active_profile_id": profileID,
	}))
}
