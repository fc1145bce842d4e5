// Package paymentconfirm реализует HTTP-обработчик подтверждения оплаты тарифа.
//
// Оплата симулируется: проверяется только наличие платёжных полей.
// Успешное подтверждение активирует отложенный тариф и при отсутствии
// профилей создает профиль по умолчанию.
package paymentconfirm

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

// Service описывает интерфейс бизнес-логики подтверждения оплаты.
type Service interface {
	ConfirmPayment(ctx context.Context, accountUID string, payment models.DummyPayment) (*models.Entitlement, error)
}

// Handler обрабатывает HTTP-запросы подтверждения оплаты.
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
// @Summary Подтвердить оплату тарифа
// @Description Симулирует оплату и активирует отложенный тариф аккаунта.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платёжной формы"
// @Success 200 {object} map[string]any "Тариф активирован"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Аккаунт не авторизован"
// @Failure 409 {object} response.ErrorResponse "Нет тарифа, ожидающего оплаты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /plans/confirm [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.paymentconfirm"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded")

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

	entitlement, err := h.service.ConfirmPayment(r.Context(), accountUID, req)
	if err != nil {
		log.Error("failed to confirm payment", sl.Err(err))
		w.WriteHeader(response.StatusCode(err))
		render.JSON(w, r, response.DomainError(err, "could not confirm payment"))
		return
	}

	log.Info("payment confirmed", slog.String("plan", entitlement.Plan))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"plan":         entitlement.Plan,
		"max_profiles": entitlement.MaxProfiles,
		"message":      "payment accepted, plan is active",
	}))
}
