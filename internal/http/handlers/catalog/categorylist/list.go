// Package categorylist реализует HTTP-обработчик выдачи категорий каталога.
// Для детского активного профиля список сужается до разрешённых категорий.
package categorylist

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

// Service описывает интерфейс бизнес-логики выдачи категорий.
type Service interface {
	ListCategories(ctx context.Context, profile *models.Profile) ([]*models.Category, error)
}

// Handler обрабатывает HTTP-запросы списка категорий.
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
// @Summary Список категорий
// @Description Возвращает категории каталога с учётом активного профиля.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список категорий"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /catalog/categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.categorylist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	profile := middlewarectx.ProfileFromContext(r.Context())

	categories, err := h.service.ListCategories(r.Context(), profile)
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not list categories"))
		return
	}

	log.Info("categories listed", slog.Int("count", len(categories)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"categories": categories,
	}))
}
