// Package models содержит доменные структуры стриминговой платформы:
// аккаунты, профили, каталог контента и избранное, а также
// вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Account представляет зарегистрированный аккаунт сервиса.
// Один аккаунт владеет несколькими профилями (от 1 до лимита тарифа).
type Account struct {
	UID          string    // Уникальный идентификатор аккаунта
	Email        string    // Электронная почта (уникальная, используется для входа)
	PasswordHash string    // Хэш пароля
	Plan         string    // Активный тариф, пустая строка — тариф не оплачен
	PendingPlan  string    // Выбранный, но ещё не оплаченный тариф
	CreatedAt    time.Time // Дата регистрации
}

// TokenInfo содержит данные аккаунта, извлечённые из JWT.
type TokenInfo struct {
	AccountUID string
	Email      string
}
