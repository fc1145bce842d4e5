package models

import "errors"

// Доменные ошибки. Сервисы возвращают их (возможно обёрнутыми через %w),
// HTTP-обработчики сопоставляют со статусами через errors.Is.
var (
	// ErrInvalidInput — отсутствует или пусто обязательное поле.
	ErrInvalidInput = errors.New("invalid input")
	// ErrAccountExists — аккаунт с таким email уже зарегистрирован.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound — профиль, контент или запись избранного не найдены.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — чужой профиль либо запрещённая для детского профиля категория.
	ErrForbidden = errors.New("forbidden")
	// ErrProfileLimitExceeded — достигнут лимит профилей тарифа.
	ErrProfileLimitExceeded = errors.New("profile limit exceeded")
	// ErrLastProfile — нельзя удалить единственный профиль аккаунта.
	ErrLastProfile = errors.New("last profile cannot be deleted")
	// ErrFavoriteExists — контент уже находится в избранном профиля.
	ErrFavoriteExists = errors.New("favorite already exists")
	// ErrNoPendingPlan — подтверждение оплаты без выбранного тарифа.
	ErrNoPendingPlan = errors.New("no pending plan to confirm")
)
