package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

func scanContents(rows *sql.Rows) ([]*models.Content, error) {
	var result []*models.Content
	for rows.Next() {
		var c models.Content
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL,
			&c.ContentType, &c.CategoryID, &c.CategoryName, &c.Year,
			&c.Duration, &c.Rating, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

const contentColumns = `c.id, c.title, c.description, c.image_url, c.content_type,
			      c.category_id, cat.name, c.year, c.duration, c.rating, c.created_at`

// ListCategories возвращает все категории каталога.
func (s *Storage) ListCategories(ctx context.Context) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description FROM categories ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Category
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetCategory возвращает категорию по её идентификатору.
func (s *Storage) GetCategory(ctx context.Context, categoryID int64) (*models.Category, error) {
	const op = "storage.GetCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description FROM categories WHERE id = $1`
	c := &models.Category{}
	if err := s.DB.QueryRowContext(ctx, query, categoryID).Scan(&c.ID, &c.Name,
		&c.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListContent возвращает весь каталог в порядке добавления.
func (s *Storage) ListContent(ctx context.Context) ([]*models.Content, error) {
	const op = "storage.ListContent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contentColumns + `
			  FROM contents c
			  JOIN categories cat ON cat.id = c.category_id
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query)
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

// ListContentByCategory возвращает контент одной категории.
func (s *Storage) ListContentByCategory(ctx context.Context, categoryID int64) ([]*models.Content, error) {
	const op = "storage.ListContentByCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contentColumns + `
			  FROM contents c
			  JOIN categories cat ON cat.id = c.category_id
			  WHERE c.category_id = $1
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query, categoryID)
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

// ListContentByCategoryNames возвращает контент категорий из списка names.
// Используется для детских профилей, которым доступен только разрешённый
// набор категорий.
func (s *Storage) ListContentByCategoryNames(ctx context.Context, names []string) ([]*models.Content, error) {
	const op = "storage.ListContentByCategoryNames"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contentColumns + `
			  FROM contents c
			  JOIN categories cat ON cat.id = c.category_id
			  WHERE cat.name = ANY($1)
			  ORDER BY c.id`
	rows, err := s.DB.QueryContext(ctx, query, names)
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

// GetContent возвращает единицу контента по её идентификатору.
func (s *Storage) GetContent(ctx context.Context, contentID int64) (*models.Content, error) {
	const op = "storage.GetContent"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contentColumns + `
			  FROM contents c
			  JOIN categories cat ON cat.id = c.category_id
			  WHERE c.id = $1`
	c := &models.Content{}
	row := s.DB.QueryRowContext(ctx, query, contentID)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL,
		&c.ContentType, &c.CategoryID, &c.CategoryName, &c.Year,
		&c.Duration, &c.Rating, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}
