// Package favoritelist реализует HTTP-обработчик выдачи избранного
// активного профиля, сгруппированного на фильмы и сериалы.
package favoritelist

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

// Service описывает интерфейс бизнес-логики выдачи избранного.
type Service interface {
	List(ctx context.Context, accountUID string, profileID int64) ([]*models.Content, error)
}

// Handler обрабатывает HTTP-запросы списка избранного.
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
// @Summary Список избранного
// @Description Возвращает избранное активного профиля, разделённое на фильмы и сериалы.
// @Tags Favorites
// @Produce  json
// @Success 200 {object} map[string]any "Избранное профиля"
// @Failure 400 {object} response.ErrorResponse "Профиль не выбран"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /favorites [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.favorite.favoritelist"
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

	profile := middlewarectx.ProfileFromContext(r.Context())
	if profile == nil {
		log.Error("active profile not selected")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("no active profile selected"))
		return
	}

	favorites, err := h.service.List(r.Context(), accountUID, profile.ID)
	if err != nil {
		log.Error("failed to list favorites", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not list favorites"))
		return
	}

	movies := make([]*models.Content, 0, len(favorites))
	series := make([]*models.Content, 0, len(favorites))
	for _, c := range favorites {
		if c.ContentType == models.ContentTypeSeries {
			series = append(series, c)
			continue
		}
		movies = append(movies, c)
	}

	log.Info("favorites listed", slog.Int("count", len(favorites)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"movies": movies,
		"series": series,
	}))
}
