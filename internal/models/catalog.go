package models

import "time"

// Типы контента каталога.
const (
	ContentTypeMovie  = "movie"
	ContentTypeSeries = "series"
)

// Category представляет категорию каталога с уникальным именем.
type Category struct {
	ID          int64  // Идентификатор категории
	Name        string // Уникальное имя
	Description string // Описание (опционально)
}

// Content представляет единицу каталога: фильм или сериал.
// Контент принадлежит ровно одной категории и разделяется между
// профилями через избранное, а не копируется.
type Content struct {
	ID           int64     // Идентификатор контента
	Title        string    // Название
	Description  string    // Описание
	ImageURL     string    // Ссылка на постер
	ContentType  string    // "movie" или "series"
	CategoryID   int64     // Категория, к которой относится контент
	CategoryName string    // Имя категории (заполняется при выборке с join)
	Year         int       // Год выхода
	Duration     string    // Например "148 min" или "4 temporadas"
	Rating       string    // Возрастной рейтинг, например "PG-13"
	CreatedAt    time.Time // Дата добавления в каталог
}
