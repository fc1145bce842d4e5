package models

// Канонические имена тарифов.
const (
	PlanBasic    = "basic"
	PlanStandard = "standard"
	PlanPremium  = "premium"
)

// Entitlement описывает активный тариф аккаунта и вытекающий из него
// лимит профилей.
type Entitlement struct {
	AccountUID  string // Аккаунт-владелец тарифа
	Plan        string // Каноническое имя тарифа
	MaxProfiles int    // Максимальное количество профилей
}

// DummyPayment используется для приёма данных платёжной формы.
// Платёж симулируется: проверяется только наличие полей.
type DummyPayment struct {
	CardNumber string `json:"card_number" validate:"required"` // Номер карты
	HolderName string `json:"holder_name" validate:"required"` // Имя держателя
	Expiry     string `json:"expiry" validate:"required"`      // Срок действия
	CVV        string `json:"cvv" validate:"required"`         // Код CVV
}

// NormalizePlan приводит имя тарифа к каноническому виду.
// Исторические испанские имена тарифов принимаются как синонимы.
func NormalizePlan(name string) string {
	switch name {
	case PlanBasic, "basico":
		return PlanBasic
	case PlanStandard, "estandar":
		return PlanStandard
	case PlanPremium:
		return PlanPremium
	default:
		return name
	}
}

// PlanMaxProfiles возвращает лимит профилей для тарифа.
// Неизвестный тариф ограничивается одним профилем.
func PlanMaxProfiles(name string) int {
	switch NormalizePlan(name) {
	case PlanStandard:
		return 2
	case PlanPremium:
		return 4
	default:
		return 1
	}
}
