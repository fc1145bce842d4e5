// Package favoriteadd реализует HTTP-обработчик добавления контента
// в избранное активного профиля.
package favoriteadd

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

// Service описывает интерфейс бизнес-логики добавления в избранное.
type Service interface {
	Add(ctx context.Context, accountUID string, profileID, contentID int64) error
}

// Handler обрабатывает HTTP-запросы добавления в избранное.
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
// @Summary Добавить в избранное
// @Description Добавляет контент в избранное активного профиля.
// @Tags Favorites
// @Produce  json
// @Param id path int true "ID контента"
// @Success 200 {object} map[string]any "Контент добавлен в избранное"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или профиль не выбран"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 404 {object} response.ErrorResponse "Контент не найден"
// @Failure 409 {object} response.ErrorResponse "Контент уже в избранном"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /favorites/{id} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorite.favoriteadd"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	idStr := chi.URLParam(r, "id")
	contentID, err := strconv.ParseInt(idStr, 10, 64)
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

	profile := middlewarectx.ProfileFromContext(r.Context())
	if profile == nil {
		log.Error("active profile not selected")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no active profile selected"))
		return
	}

	if err := h.service.Add(r.Context(), accountUID, profile.ID, contentID); err != nil {
		log.Error("failed to add favorite", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not add favorite"))
		return
	}

	log.Info("favorite added",
		slog.Int64("profile_id", profile.ID),
		slog.Int64("content_id", contentID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "favorite added",
	}))
}
