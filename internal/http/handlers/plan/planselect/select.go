// Package planselect реализует HTTP-обработчик выбора тарифа.
// Выбранный тариф ставится в ожидание оплаты и не меняет лимит профилей
// до подтверждения платежа.
package planselect

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

// Request — входные данные для выбора тарифа.
type Request struct {
	Plan string `json:"plan" validate:"required"`
}

// Service описывает интерфейс бизнес-логики выбора тарифа.
type Service interface {
	SelectPlan(ctx context.Context, accountUID, planName string) (*models.Entitlement, error)
}

// Handler обрабатывает HTTP-запросы выбора тарифа.
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
// @Summary Выбрать тариф
// @Description Ставит тариф в ожидание оплаты для текущего аккаунта.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body Request true "Имя тарифа"
// @Success 200 {object} map[string]any "Тариф выбран"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans/select [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.planselect"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("plan", req.Plan))

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

	entitlement, err := h.service.SelectPlan(r.Context(), accountUID, req.Plan)
	if err != nil {
		log.Error("failed to select plan", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not select plan"))
		return
	}

	log.Info("plan selected", slog.String("plan", entitlement.Plan))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"plan":         entitlement.Plan,
		"max_profiles": entitlement.MaxProfiles,
		"message":      "plan staged, awaiting payment confirmation",
	}))
}
