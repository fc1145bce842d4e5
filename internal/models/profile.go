package models

import "time"

// DefaultAvatar назначается профилю при создании, если аватар не выбран.
const DefaultAvatar = "avatar1.png"

// Profile представляет именованный профиль внутри аккаунта.
// Профиль принадлежит ровно одному аккаунту, имеет собственное избранное
// и собственный режим видимости контента (детский или взрослый).
type Profile struct {
	ID         int64     // Идентификатор профиля
	AccountUID string    // UID аккаунта-владельца
	Name       string    // Отображаемое имя
	Avatar     string    // Имя файла аватара
	IsChild    bool      // Детский профиль: видит только разрешённые категории
	CreatedAt  time.Time // Дата создания
}

// DummyProfile используется для приёма данных профиля из JSON-запроса.
type DummyProfile struct {
	Name    string `json:"name" validate:"required,min=1,max=50"` // Имя профиля
	IsChild bool   `json:"is_child"`                              // Признак детского профиля
}
