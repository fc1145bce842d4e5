// Package favorites содержит бизнес-логику избранного: добавление,
// удаление и выдачу избранного контента профиля. Все операции проходят
// через проверку владения профилем.
package favorites

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// FavoritesRepository описывает методы работы с избранным в хранилище.
type FavoritesRepository interface {
	// AddFavorite добавляет пару (профиль, контент); дубликат отклоняется.
	AddFavorite(ctx context.Context, profileID, contentID int64) error
	// RemoveFavorite удаляет пару или возвращает models.ErrNotFound.
	RemoveFavorite(ctx context.Context, profileID, contentID int64) error
	// ListFavorites возвращает избранный контент профиля в порядке добавления.
	ListFavorites(ctx context.Context, profileID int64) ([]*models.Content, error)
	// GetContent возвращает контент по ID или models.ErrNotFound.
	GetContent(ctx context.Context, contentID int64) (*models.Content, error)
}

// ProfileAuthorizer проверяет, что профиль принадлежит аккаунту.
type ProfileAuthorizer interface {
	Authorize(ctx context.Context, accountUID string, profileID int64) (*models.Profile, error)
}

// FavoritesService реализует операции над избранным профиля.
type FavoritesService struct {
	repo     FavoritesRepository
	profiles ProfileAuthorizer
	log      *slog.Logger
}

// NewFavoritesService создает новый экземпляр FavoritesService.
func NewFavoritesService(repo FavoritesRepository, profiles ProfileAuthorizer, log *slog.Logger) *FavoritesService {
	return &FavoritesService{
		repo:     repo,
		profiles: profiles,
		log:      log,
	}
}

// Add добавляет контент в избранное профиля.
// Несуществующий контент — models.ErrNotFound, повтор — models.ErrFavoriteExists.
func (s *FavoritesService) Add(ctx context.Context, accountUID string, profileID, contentID int64) error {
	if _, err := s.profiles.Authorize(ctx, accountUID, profileID); err != nil {
		return err
	}
	if _, err := s.repo.GetContent(ctx, contentID); err != nil {
		return err
	}
	if err := s.repo.AddFavorite(ctx, profileID, contentID); err != nil {
		return err
	}
	s.log.Info("added favorite", slog.Int64("profile_id", profileID),
		slog.Int64("content_id", contentID))
	return nil
}

// Remove удаляет контент из избранного профиля.
func (s *FavoritesService) Remove(ctx context.Context, accountUID string, profileID, contentID int64) error {
	if _, err := s.profiles.Authorize(ctx, accountUID, profileID); err != nil {
		return err
	}
	if err := s.repo.RemoveFavorite(ctx, profileID, contentID); err != nil {
		return err
	}
	s.log.Info("removed favorite", slog.Int64("profile_id", profileID),
		slog.Int64("content_id", contentID))
	return nil
}

// List возвращает избранный контент профиля в порядке добавления.
// Разделение на фильмы и сериалы выполняет вызывающая сторона по ContentType.
func (s *FavoritesService) List(ctx context.Context, accountUID string, profileID int64) ([]*models.Content, error) {
	if _, err := s.profiles.Authorize(ctx, accountUID, profileID); err != nil {
		return nil, err
	}
	return s.repo.ListFavorites(ctx, profileID)
}
