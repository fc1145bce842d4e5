// Package profilecreate реализует HTTP-обработчик создания профиля.
//
// Handler принимает JSON с именем профиля и детским флагом, валидирует
// данные, извлекает UID аккаунта из контекста и делегирует создание
// бизнес-логике, которая не позволяет превысить лимит тарифа.
package profilecreate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/streaming-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/streaming-platform/internal/http/response"
	"github.com/magabrotheeeer/streaming-platform/internal/lib/sl"
	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// Service описывает интерфейс бизнес-логики создания профиля.
type Service interface {
	Create(ctx context.Context, accountUID, name string, isChild bool) (*models.Profile, error)
}

// Handler обрабатывает HTTP-запросы создания профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать профиль
// @Description Создает профиль для текущего аккаунта в пределах лимита тарифа.
// @Tags Profiles
// @Accept  json
// @Produce  json
// @Param request body models.DummyProfile true "Данные нового профиля"
// @Success 200 {object} map[string]any "Профиль создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 409 {object} response.ErrorResponse "Достигнут лимит профилей"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /profiles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.profilecreate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	accountUID, ok := r.Context().Value(middlewarectx.AccountUID).(string)
	if !ok || accountUID == "" {
		log.Error("account uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	profile, err := h.service.Create(r.Context(), accountUID, req.Name, req.IsChild)
	if err != nil {
		log.Error("failed to create profile", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not create profile"))
		return
	}

	log.Info("profile created", slog.Int64("profile_id", profile.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"profile": profile,
	}))
}
