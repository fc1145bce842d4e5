// Package profilelist реализует HTTP-обработчик выдачи профилей аккаунта.
package profilelist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Service описывает интерфейс бизнес-логики выдачи профилей.
type Service interface {
	List(ctx context.Context, accountUID string) ([]*models.Profile, error)
}

// Handler обрабатывает HTTP-запросы списка профилей.
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
// @Summary Список профилей
// @Description Возвращает профили текущего аккаунта в порядке создания.
// @Tags Profiles
// @Produce  json
// @Success 200 {object} map[string]any "Список профилей"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profiles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.profilelist"
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

	profiles, err := h.service.List(r.Context(), accountUID)
	if err != nil {
		log.Error("failed to list profiles", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not list profiles"))
		return
	}

	log.Info("profiles listed", slog.Int("count", len(profiles)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"profiles": profiles,
	}))
}
