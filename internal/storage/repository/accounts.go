package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// RegisterAccount сохраняет новый аккаунт и возвращает его UID.
// Уникальность email обеспечивается атомарно на уровне вставки:
// повторная регистрация возвращает models.ErrAccountExists.
func (s *Storage) RegisterAccount(ctx context.Context, account models.Account) (string, error) {
	const op = "storage.RegisterAccount"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO accounts (email, password_hash)
			  VALUES ($1, $2)
			  ON CONFLICT (email) DO NOTHING
			  RETURNING uid;`
	err := s.DB.QueryRowContext(ctx, query, account.Email, account.PasswordHash).Scan(&newUID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", op, models.ErrAccountExists)
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetAccountByEmail возвращает аккаунт по email.
// Возвращает models.ErrNotFound, если аккаунт не зарегистрирован.
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	const op = "storage.GetAccountByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, plan, pending_plan, created_at
			  FROM accounts
			  WHERE email = $1`
	a := &models.Account{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&a.UID, &a.Email, &a.PasswordHash, &a.Plan,
		&a.PendingPlan, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// GetAccount возвращает аккаунт по его UID.
func (s *Storage) GetAccount(ctx context.Context, accountUID string) (*models.Account, error) {
	const op = "storage.GetAccount"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, email, password_hash, plan, pending_plan, created_at
			  FROM accounts
			  WHERE uid = $1`
	a := &models.Account{}
	row := s.DB.QueryRowContext(ctx, query, accountUID)
	if err := row.Scan(&a.UID, &a.Email, &a.PasswordHash, &a.Plan,
		&a.PendingPlan, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// StagePlan сохраняет выбранный тариф как ожидающий оплаты.
// Активный тариф и лимит профилей при этом не меняются.
func (s *Storage) StagePlan(ctx context.Context, accountUID, plan string) error {
	const op = "storage.StagePlan"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE accounts
			  SET pending_plan = $1
			  WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, plan, accountUID)
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

// ConfirmPendingPlan переводит отложенный тариф в активный одной транзакцией:
// строка аккаунта блокируется, pending_plan очищается, и если у аккаунта
// ещё нет профилей — создаётся профиль по умолчанию с именем defaultProfileName.
// Возвращает активированный тариф или models.ErrNoPendingPlan.
func (s *Storage) ConfirmPendingPlan(ctx context.Context, accountUID, defaultProfileName string) (string, error) {
	const op = "storage.ConfirmPendingPlan"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var pendingPlan string
	query := `SELECT pending_plan FROM accounts WHERE uid = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, query, accountUID).Scan(&pendingPlan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if pendingPlan == "" {
		return "", fmt.Errorf("%s: %w", op, models.ErrNoPendingPlan)
	}

	query = `UPDATE accounts SET plan = pending_plan, pending_plan = '' WHERE uid = $1`
	if _, err = tx.ExecContext(ctx, query, accountUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var profileCount int
	query = `SELECT COUNT(*) FROM profiles WHERE account_uid = $1`
	if err = tx.QueryRowContext(ctx, query, accountUID).Scan(&profileCount); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if profileCount == 0 {
		query = `INSERT INTO profiles (account_uid, name, avatar, is_child)
				 VALUES ($1, $2, $3, false)`
		if _, err = tx.ExecContext(ctx, query, accountUID, defaultProfileName,
			models.DefaultAvatar); err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return pendingPlan, nil
}
