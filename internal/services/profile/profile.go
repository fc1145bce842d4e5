// Package profile содержит бизнес-логику управления профилями аккаунта:
// создание в пределах лимита тарифа, переименование, удаление с защитой
// последнего профиля и выбор активного профиля сессии.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

// ProfileRepository описывает методы работы с профилями в хранилище.
type ProfileRepository interface {
	// ListProfiles возвращает профили аккаунта в порядке создания.
	ListProfiles(ctx context.Context, accountUID string) ([]*models.Profile, error)
	// GetProfile возвращает профиль по ID или models.ErrNotFound.
	GetProfile(ctx context.Context, profileID int64) (*models.Profile, error)
	// CreateProfile атомарно проверяет лимит и добавляет профиль.
	CreateProfile(ctx context.Context, profile models.Profile, maxProfiles int) (*models.Profile, error)
	// UpdateProfile обновляет профиль и возвращает число изменённых строк.
	UpdateProfile(ctx context.Context, profileID int64, accountUID, name string, isChild bool) (int, error)
	// DeleteProfile атомарно удаляет профиль, защищая последний.
	DeleteProfile(ctx context.Context, profileID int64, accountUID string) error
	// GetAccount возвращает аккаунт для определения лимита тарифа.
	GetAccount(ctx context.Context, accountUID string) (*models.Account, error)
}

// Sessions описывает хранилище активного профиля между запросами.
type Sessions interface {
	SetActiveProfile(ctx context.Context, accountUID string, profileID int64) error
	GetActiveProfile(ctx context.Context, accountUID string) (int64, bool, error)
	Clear(ctx context.Context, accountUID string) error
}

// ProfileService реализует операции над профилями аккаунта.
type ProfileService struct {
	repo     ProfileRepository
	sessions Sessions
	log      *slog.Logger
}

// NewProfileService создает новый экземпляр ProfileService.
func NewProfileService(repo ProfileRepository, sessions Sessions, log *slog.Logger) *ProfileService {
	return &ProfileService{
		repo:     repo,
		sessions: sessions,
		log:      log,
	}
}

// List возвращает профили аккаунта в порядке создания.
func (s *ProfileService) List(ctx context.Context, accountUID string) ([]*models.Profile, error) {
	return s.repo.ListProfiles(ctx, accountUID)
}

// Create добавляет профиль, не превышая лимит активного тарифа.
// Аккаунт без оплаченного тарифа ограничен одним профилем.
func (s *ProfileService) Create(ctx context.Context, accountUID, name string, isChild bool) (*models.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: profile name is required", models.ErrInvalidInput)
	}

	account, err := s.repo.GetAccount(ctx, accountUID)
	if err != nil {
		return nil, err
	}

	profile := models.Profile{
		AccountUID: accountUID,
		Name:       name,
		Avatar:     models.DefaultAvatar,
		IsChild:    isChild,
	}
	created, err := s.repo.CreateProfile(ctx, profile, models.PlanMaxProfiles(account.Plan))
	if err != nil {
		return nil, err
	}

	s.log.Info("created profile", slog.Int64("profile_id", created.ID),
		slog.String("account_uid", accountUID))
	return created, nil
}

// Update переименовывает профиль и меняет детский флаг.
// Профиль должен принадлежать аккаунту.
func (s *ProfileService) Update(ctx context.Context, accountUID string, profileID int64, name string, isChild bool) (*models.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: profile name is required", models.ErrInvalidInput)
	}

	profile, err := s.Authorize(ctx, accountUID, profileID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.UpdateProfile(ctx, profileID, accountUID, name, isChild)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.ErrNotFound
	}

	profile.Name = name
	profile.IsChild = isChild
	return profile, nil
}

// Delete удаляет профиль аккаунта. Последний профиль удалить нельзя.
// Если удалён активный профиль сессии, выбор сбрасывается.
func (s *ProfileService) Delete(ctx context.Context, accountUID string, profileID int64) error {
	if _, err := s.Authorize(ctx, accountUID, profileID); err != nil {
		return err
	}

	if err := s.repo.DeleteProfile(ctx, profileID, accountUID); err != nil {
		return err
	}

	activeID, found, err := s.sessions.GetActiveProfile(ctx, accountUID)
	if err == nil && found && activeID == profileID {
		if err := s.sessions.Clear(ctx, accountUID); err != nil {
			s.log.Warn("failed to clear active profile", slog.String("account_uid", accountUID))
		}
	}

	s.log.Info("deleted profile", slog.Int64("profile_id", profileID),
		slog.String("account_uid", accountUID))
	return nil
}

// Select делает профиль активным для последующих запросов каталога
// и избранного.
func (s *ProfileService) Select(ctx context.Context, accountUID string, profileID int64) error {
	if _, err := s.Authorize(ctx, accountUID, profileID); err != nil {
		return err
	}
	return s.sessions.SetActiveProfile(ctx, accountUID, profileID)
}

// Authorize — единая проверка владения профилем, используется всеми
// операциями над профилями и избранным. Возвращает models.ErrNotFound
// для несуществующего профиля и models.ErrForbidden для чужого.
func (s *ProfileService) Authorize(ctx context.Context, accountUID string, profileID int64) (*models.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.AccountUID != accountUID {
		return nil, fmt.Errorf("%w: profile belongs to another account", models.ErrForbidden)
	}
	return profile, nil
}

// Active возвращает активный профиль аккаунта, если он выбран.
// Протухший выбор (профиль удалён или сменил владельца) сбрасывается.
func (s *ProfileService) Active(ctx context.Context, accountUID string) (*models.Profile, bool, error) {
	profileID, found, err := s.sessions.GetActiveProfile(ctx, accountUID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	profile, err := s.Authorize(ctx, accountUID, profileID)
	if err != nil {
		_ = s.sessions.Clear(ctx, accountUID)
		return nil, false, nil
	}
	return profile, true, nil
}
