// Package health реализует HTTP-обработчик проверки готовности сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
)

// Checker проверяет доступность зависимости сервиса.
type Checker interface {
	Ready(ctx context.Context) error
}

// Handler обрабатывает HTTP-запросы проверки здоровья.
type Handler struct {
	log     *slog.Logger
	storage Checker
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, storage Checker) *Handler {
	return &Handler{
		log:     log,
		storage: storage,
	}
}

// ServeHTTP godoc
// @Summary Проверка здоровья сервиса
// @Description Возвращает состояние сервиса и его хранилища.
// @Tags Health
// @Produce  json
// @Success 200 {object} map[string]any "Сервис готов"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.Ready(r.Context()); err != nil {
		h.log.Error("storage is not ready", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("storage unavailable"))
		return
	}
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "healthy",
	}))
}
