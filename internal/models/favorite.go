package models

import "time"

// Favorite представляет связь профиля с единицей контента.
// Пара (ProfileID, ContentID) уникальна: повторное добавление
// того же контента в избранное отклоняется.
type Favorite struct {
	ID        int64     // Идентификатор записи
	ProfileID int64     // Профиль-владелец
	ContentID int64     // Избранный контент
	CreatedAt time.Time // Дата добавления
}
