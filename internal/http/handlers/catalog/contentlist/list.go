// Package contentlist реализует HTTP-обработчик выдачи контента каталога.
//
// Контент можно запросить целиком или по одной категории через query-параметр
// category_id. Детский активный профиль ограничен разрешёнными категориями,
// явный запрос запрещённой категории отклоняется.
package contentlist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Service описывает интерфейс бизнес-логики выдачи контента.
type Service interface {
	ListContent(ctx context.Context, categoryID *int64, profile *models.Profile) ([]*models.Content, error)
}

// Handler обрабатывает HTTP-запросы списка контента.
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
// @Summary Список контента
// @Description Возвращает контент каталога, опционально по одной категории.
// @Tags Catalog
// @Produce  json
// @Param category_id query int false "ID категории"
// @Success 200 {object} map[string]any "Список контента"
// @Failure 400 {object} response.ErrorResponse "Некорректный category_id"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 403 {object} response.ErrorResponse "Категория недоступна детскому профилю"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /catalog/content [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.contentlist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Error("invalid category_id format", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid category_id"))
			return
		}
		categoryID = &id
	}

	profile := middlewarectx.ProfileFromContext(r.Context())

	contents, err := h.service.ListContent(r.Context(), categoryID, profile)
	if err != nil {
		log.Error("failed to list content", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not list content"))
		return
	}

	log.Info("content listed", slog.Int("count", len(contents)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"contents": contents,
	}))
}
