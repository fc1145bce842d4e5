package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// ListProfiles возвращает профили аккаунта в порядке создания.
func (s *Storage) ListProfiles(ctx context.Context, accountUID string) ([]*models.Profile, error) {
	const op = "storage.ListProfiles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, account_uid, name, avatar, is_child, created_at
			  FROM profiles
			  WHERE account_uid = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, accountUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Profile
	for rows.Next() {
		var p models.Profile
		if err = rows.Scan(&p.ID, &p.AccountUID, &p.Name, &p.Avatar,
			&p.IsChild, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProfile возвращает профиль по его идентификатору.
// Возвращает models.ErrNotFound, если профиль не существует.
func (s *Storage) GetProfile(ctx context.Context, profileID int64) (*models.Profile, error) {
	const op = "storage.GetProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, account_uid, name, avatar, is_child, created_at
			  FROM profiles
			  WHERE id = $1`
	p := &models.Profile{}
	row := s.DB.QueryRowContext(ctx, query, profileID)
	if err := row.Scan(&p.ID, &p.AccountUID, &p.Name, &p.Avatar,
		&p.IsChild, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// CreateProfile создает профиль, не позволяя превысить лимит тарифа.
// Проверка количества и вставка выполняются одной транзакцией со строчной
// блокировкой аккаунта: два одновременных создания возле лимита не могут
// пройти оба. Возвращает models.ErrProfileLimitExceeded при переполнении.
func (s *Storage) CreateProfile(ctx context.Context, profile models.Profile, maxProfiles int) (*models.Profile, error) {
	const op = "storage.CreateProfile"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var uid string
	query := `SELECT uid FROM accounts WHERE uid = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, profile.AccountUID).Scan(&uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	query = `SELECT COUNT(*) FROM profiles WHERE account_uid = $1`
	if err = tx.QueryRowContext(ctx, query, profile.AccountUID).Scan(&count); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count >= maxProfiles {
		return nil, fmt.Errorf("%s: %w", op, models.ErrProfileLimitExceeded)
	}

	created := profile
	query = `INSERT INTO profiles (account_uid, name, avatar, is_child)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id, created_at`
	if err = tx.QueryRowContext(ctx, query, profile.AccountUID, profile.Name,
		profile.Avatar, profile.IsChild).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &created, nil
}

// UpdateProfile обновляет имя и детский флаг профиля, принадлежащего аккаунту.
// Возвращает количество изменённых строк.
func (s *Storage) UpdateProfile(ctx context.Context, profileID int64, accountUID, name string, isChild bool) (int, error) {
	const op = "storage.UpdateProfile"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE profiles
			  SET name = $1, is_child = $2
			  WHERE id = $3 AND account_uid = $4`
	result, err := s.DB.ExecContext(ctx, query, name, isChild, profileID, accountUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteProfile удаляет профиль аккаунта, защищая последний профиль.
// Проверка количества и удаление выполняются одной транзакцией со строчной
// блокировкой аккаунта. Возвращает models.ErrLastProfile, если профиль
// единственный. Избранное профиля удаляется каскадно схемой БД.
func (s *Storage) DeleteProfile(ctx context.Context, profileID int64, accountUID string) error {
	const op = "storage.DeleteProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var uid string
	query := `SELECT uid FROM accounts WHERE uid = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, accountUID).Scan(&uid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	var count int
	query = `SELECT COUNT(*) FROM profiles WHERE account_uid = $1`
	if err = tx.QueryRowContext(ctx, query, accountUID).Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count <= 1 {
		return fmt.Errorf("%s: %w", op, models.ErrLastProfile)
	}

	query = `DELETE FROM profiles WHERE id = $1 AND account_uid = $2`
	result, err := tx.ExecContext(ctx, query, profileID, accountUID)
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

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
