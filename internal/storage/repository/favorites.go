package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// AddFavorite добавляет контент в избранное профиля.
// Уникальность пары (profile_id, content_id) обеспечивается индексом:
// повторное добавление возвращает models.ErrFavoriteExists, не дублируя запись.
func (s *Storage) AddFavorite(ctx context.Context, profileID, contentID int64) error {
	const op = "storage.AddFavorite"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO favorites (profile_id, content_id)
			  VALUES ($1, $2)
			  ON CONFLICT (profile_id, content_id) DO NOTHING`
	result, err := s.DB.ExecContext(ctx, query, profileID, contentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrFavoriteExists)
	}
	return nil
}

// RemoveFavorite удаляет контент из избранного профиля.
// Возвращает models.ErrNotFound, если пары не существует.
func (s *Storage) RemoveFavorite(ctx context.Context, profileID, contentID int64) error {
	const op = "storage.RemoveFavorite"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM favorites WHERE profile_id = $1 AND content_id = $2`
	result, err := s.DB.ExecContext(ctx, query, profileID, contentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}

// ListFavorites возвращает избранный контент профиля в порядке добавления.
func (s *Storage) ListFavorites(ctx context.Context, profileID int64) ([]*models.Content, error) {
	const op = "storage.ListFavorites"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contentColumns + `
			  FROM favorites f
			  JOIN contents c ON c.id = f.content_id
			  JOIN categories cat ON cat.id = c.category_id
			  WHERE f.profile_id = $1
			  ORDER BY f.id`
	rows, err := s.DB.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanContents(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
