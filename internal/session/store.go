// Package session хранит активный профиль аккаунта между запросами.
//
// Хранилище построено поверх Redis: ключом служит UID аккаунта,
// значением — идентификатор выбранного профиля. Содержимое сессии
// непрозрачно для бизнес-логики, которая только читает и пишет ключи.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL активного профиля. Продлевается при каждом выборе профиля.
const activeProfileTTL = 24 * time.Hour

// Store хранит выбранный профиль для каждого аккаунта.
type Store struct {
	db *redis.Client
}

// New создает хранилище сессий поверх существующего клиента Redis.
func New(db *redis.Client) *Store {
	return &Store{db: db}
}

func activeProfileKey(accountUID string) string {
	return fmt.Sprintf("session:active_profile:%s", accountUID)
}

// SetActiveProfile запоминает выбранный профиль аккаунта.
func (s *Store) SetActiveProfile(ctx context.Context, accountUID string, profileID int64) error {
	const op = "session.SetActiveProfile"
	if err := s.db.Set(ctx, activeProfileKey(accountUID),
		strconv.FormatInt(profileID, 10), activeProfileTTL).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetActiveProfile возвращает идентификатор выбранного профиля.
// Возвращает false без ошибки, если профиль не выбирался.
func (s *Store) GetActiveProfile(ctx context.Context, accountUID string) (int64, bool, error) {
	const op = "session.GetActiveProfile"
	val, err := s.db.Get(ctx, activeProfileKey(accountUID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}
	return id, true, nil
}

// Clear сбрасывает выбранный профиль аккаунта (используется при логауте
// и при удалении активного профиля).
func (s *Store) Clear(ctx context.Context, accountUID string) error {
	const op = "session.Clear"
	if err := s.db.Del(ctx, activeProfileKey(accountUID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
