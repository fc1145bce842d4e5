// Package catalog содержит бизнес-логику выдачи каталога контента,
// включая кеширование и фильтрацию для детских профилей.
//
// Детский профиль видит только категории из фиксированного разрешённого
// списка. Явный запрос запрещённой категории отклоняется, а не возвращает
// пустой результат.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// CatalogRepository описывает методы выборки каталога из хранилища.
type CatalogRepository interface {
	// ListCategories возвращает все категории.
	ListCategories(ctx context.Context) ([]*models.Category, error)
	// GetCategory возвращает категорию по ID или models.ErrNotFound.
	GetCategory(ctx context.Context, categoryID int64) (*models.Category, error)
	// ListContent возвращает весь каталог.
	ListContent(ctx context.Context) ([]*models.Content, error)
	// ListContentByCategory возвращает контент одной категории.
	ListContentByCategory(ctx context.Context, categoryID int64) ([]*models.Content, error)
	// ListContentByCategoryNames возвращает контент перечисленных категорий.
	ListContentByCategoryNames(ctx context.Context, names []string) ([]*models.Content, error)
}

// Cache описывает методы для кэширования данных каталога.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// CatalogService реализует выдачу каталога с учётом профиля зрителя.
type CatalogService struct {
	repo       CatalogRepository
	cache      Cache
	allowed    map[string]bool // категории, доступные детским профилям
	allowOrder []string        // тот же список в порядке конфигурации
	log        *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
// childAllowed — разрешённый для детских профилей список имён категорий.
func NewCatalogService(repo CatalogRepository, cache Cache, childAllowed []string, log *slog.Logger) *CatalogService {
	allowed := make(map[string]bool, len(childAllowed))
	for _, name := range childAllowed {
		allowed[name] = true
	}
	return &CatalogService{
		repo:       repo,
		cache:      cache,
		allowed:    allowed,
		allowOrder: childAllowed,
		log:        log,
	}
}

// ListCategories возвращает категории, видимые профилю.
// Детский профиль видит только разрешённые категории; nil-профиль
// (профиль ещё не выбран) видит всё.
func (s *CatalogService) ListCategories(ctx context.Context, profile *models.Profile) ([]*models.Category, error) {
	var categories []*models.Category
	const cacheKey = "catalog:categories"
	found, err := s.cache.Get(cacheKey, &categories)
	if err != nil {
		s.log.Warn("failed to read categories from cache", slog.Any("err", err))
	}
	if !found {
		categories, err = s.repo.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, categories, time.Hour); err != nil {
			s.log.Warn("failed to cache categories", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	if profile == nil || !profile.IsChild {
		return categories, nil
	}
	filtered := make([]*models.Category, 0, len(categories))
	for _, c := range categories {
		if s.allowed[c.Name] {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// ListContent возвращает контент с учётом фильтра категории и профиля.
// Запрос запрещённой категории детским профилем возвращает models.ErrForbidden.
func (s *CatalogService) ListContent(ctx context.Context, categoryID *int64, profile *models.Profile) ([]*models.Content, error) {
	isChild := profile != nil && profile.IsChild

	if categoryID != nil {
		category, err := s.repo.GetCategory(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if isChild && !s.allowed[category.Name] {
			return nil, fmt.Errorf("%w: category %q is not allowed for child profiles",
				models.ErrForbidden, category.Name)
		}
		return s.contentByCategory(ctx, *categoryID)
	}

	if isChild {
		return s.childContent(ctx)
	}
	return s.allContent(ctx)
}

func (s *CatalogService) contentByCategory(ctx context.Context, categoryID int64) ([]*models.Content, error) {
	var contents []*models.Content
	cacheKey := fmt.Sprintf("catalog:content:category:%d", categoryID)
	found, err := s.cache.Get(cacheKey, &contents)
	if err != nil {
		s.log.Warn("failed to read content from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return contents, nil
	}
	contents, err = s.repo.ListContentByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, contents, time.Hour); err != nil {
		s.log.Warn("failed to cache content", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return contents, nil
}

func (s *CatalogService) childContent(ctx context.Context) ([]*models.Content, error) {
	var contents []*models.Content
	const cacheKey = "catalog:content:child"
	found, err := s.cache.Get(cacheKey, &contents)
	if err != nil {
		s.log.Warn("failed to read content from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return contents, nil
	}
	contents, err = s.repo.ListContentByCategoryNames(ctx, s.allowOrder)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, contents, time.Hour); err != nil {
		s.log.Warn("failed to cache content", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return contents, nil
}

func (s *CatalogService) allContent(ctx context.Context) ([]*models.Content, error) {
	var contents []*models.Content
	const cacheKey = "catalog:content:all"
	found, err := s.cache.Get(cacheKey, &contents)
	if err != nil {
		s.log.Warn("failed to read content from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return contents, nil
	}
	contents, err = s.repo.ListContent(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, contents, time.Hour); err != nil {
		s.log.Warn("failed to cache content", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return contents, nil
}
