// Package entitlement содержит бизнес-логику выбора тарифа и подтверждения
// симулированной оплаты. Тариф хранится на аккаунте: выбор ставит тариф
// в ожидание, подтверждение оплаты делает его активным.
package entitlement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// AccountRepository описывает методы работы с тарифом аккаунта в хранилище.
type AccountRepository interface {
	// GetAccount возвращает аккаунт по UID.
	GetAccount(ctx context.Context, accountUID string) (*models.Account, error)
	// StagePlan сохраняет выбранный тариф как ожидающий оплаты.
	StagePlan(ctx context.Context, accountUID, plan string) error
	// ConfirmPendingPlan активирует отложенный тариф и возвращает его имя.
	ConfirmPendingPlan(ctx context.Context, accountUID, defaultProfileName string) (string, error)
}

// EntitlementService реализует выбор тарифа и подтверждение оплаты.
type EntitlementService struct {
	accounts AccountRepository
	log      *slog.Logger
}

// NewEntitlementService создает новый экземпляр EntitlementService.
func NewEntitlementService(accounts AccountRepository, log *slog.Logger) *EntitlementService {
	return &EntitlementService{
		accounts: accounts,
		log:      log,
	}
}

// SelectPlan ставит выбранный тариф в ожидание оплаты.
// Лимит профилей не меняется до подтверждения оплаты.
func (s *EntitlementService) SelectPlan(ctx context.Context, accountUID, planName string) (*models.Entitlement, error) {
	if strings.TrimSpace(planName) == "" {
		return nil, fmt.Errorf("%w: plan name is required", models.ErrInvalidInput)
	}
	plan := models.NormalizePlan(planName)
	if err := s.accounts.StagePlan(ctx, accountUID, plan); err != nil {
		return nil, err
	}
	s.log.Info("plan staged for payment",
		slog.String("account_uid", accountUID), slog.String("plan", plan))
	return &models.Entitlement{
		AccountUID:  accountUID,
		Plan:        plan,
		MaxProfiles: models.PlanMaxProfiles(plan),
	}, nil
}

// ConfirmPayment подтверждает симулированную оплату и активирует отложенный тариф.
// Проверяется только наличие платёжных полей, реальная валидация карты
// не выполняется. Если у аккаунта нет профилей, создается профиль по
// умолчанию, названный по локальной части email.
func (s *EntitlementService) ConfirmPayment(ctx context.Context, accountUID string, payment models.DummyPayment) (*models.Entitlement, error) {
	if strings.TrimSpace(payment.CardNumber) == "" ||
		strings.TrimSpace(payment.HolderName) == "" ||
		strings.TrimSpace(payment.Expiry) == "" ||
		strings.TrimSpace(payment.CVV) == "" {
		return nil, fmt.Errorf("%w: all payment fields are required", models.ErrInvalidInput)
	}

	account, err := s.accounts.GetAccount(ctx, accountUID)
	if err != nil {
		return nil, err
	}

	plan, err := s.accounts.ConfirmPendingPlan(ctx, accountUID, defaultProfileName(account.Email))
	if err != nil {
		return nil, err
	}

	s.log.Info("payment confirmed, plan activated",
		slog.String("account_uid", accountUID), slog.String("plan", plan))
	return &models.Entitlement{
		AccountUID:  accountUID,
		Plan:        plan,
		MaxProfiles: models.PlanMaxProfiles(plan),
	}, nil
}

// defaultProfileName выводит имя профиля по умолчанию из email аккаунта.
func defaultProfileName(email string) string {
	name, _, found := strings.Cut(email, "@")
	if !found || name == "" {
		return email
	}
	return name
}
