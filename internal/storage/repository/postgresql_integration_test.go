package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/streaming-platform/internal/models"
)

func TestStorage_RegisterAccount(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	uid, err := storage.RegisterAccount(ctx, models.Account{
		Email:        "viewer@example.com",
		PasswordHash: "hashedpassword",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	// Повторная регистрация того же email отклоняется
	_, err = storage.RegisterAccount(ctx, models.Account{
		Email:        "viewer@example.com",
		PasswordHash: "anotherhash",
	})
	assert.ErrorIs(t, err, models.ErrAccountExists)
}

func TestStorage_GetAccountByEmail(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "premium", "")

	ctx := context.Background()

	got, err := storage.GetAccountByEmail(ctx, "viewer@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, "premium", got.Plan)

	_, err = storage.GetAccountByEmail(ctx, "unknown@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStorage_StagePlanAndConfirm(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "", "")

	ctx := context.Background()

	// Выбор тарифа только откладывает его
	require.NoError(t, storage.StagePlan(ctx, uid, "standard"))
	verify.VerifyAccountPlan(t, uid, "", "standard")

	// Подтверждение активирует тариф и создает профиль по умолчанию
	plan, err := storage.ConfirmPendingPlan(ctx, uid, "viewer")
	require.NoError(t, err)
	assert.Equal(t, "standard", plan)
	verify.VerifyAccountPlan(t, uid, "standard", "")
	verify.VerifyProfileCount(t, uid, 1)

	profiles, err := storage.ListProfiles(ctx, uid)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "viewer", profiles[0].Name)
	assert.False(t, profiles[0].IsChild)

	// Повторное подтверждение без отложенного тарифа отклоняется
	_, err = storage.ConfirmPendingPlan(ctx, uid, "viewer")
	assert.ErrorIs(t, err, models.ErrNoPendingPlan)

	// Следующая оплата не плодит профили по умолчанию
	require.NoError(t, storage.StagePlan(ctx, uid, "premium"))
	plan, err = storage.ConfirmPendingPlan(ctx, uid, "viewer")
	require.NoError(t, err)
	assert.Equal(t, "premium", plan)
	verify.VerifyProfileCount(t, uid, 1)
}

func TestStorage_CreateProfile_Limit(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "standard", "")

	ctx := context.Background()

	newProfile := func(name string) models.Profile {
		return models.Profile{
			AccountUID: uid,
			Name:       name,
			Avatar:     models.DefaultAvatar,
		}
	}

	first, err := storage.CreateProfile(ctx, newProfile("First"), 2)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = storage.CreateProfile(ctx, newProfile("Second"), 2)
	require.NoError(t, err)

	// Третий профиль превышает лимит тарифа standard
	_, err = storage.CreateProfile(ctx, newProfile("Third"), 2)
	assert.ErrorIs(t, err, models.ErrProfileLimitExceeded)
}

func TestStorage_UpdateProfile(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "premium", "")
	otherUID := factory.CreateAccount(t, "other@example.com", "hashedpassword", "premium", "")
	profileID := factory.CreateProfile(t, uid, "Old", false)

	ctx := context.Background()

	count, err := storage.UpdateProfile(ctx, profileID, uid, "New", true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := storage.GetProfile(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.True(t, got.IsChild)

	// Чужой аккаунт не меняет профиль
	count, err = storage.UpdateProfile(ctx, profileID, otherUID, "Hacked", false)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStorage_DeleteProfile(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "premium", "")
	firstID := factory.CreateProfile(t, uid, "First", false)
	secondID := factory.CreateProfile(t, uid, "Second", false)

	categoryID := factory.CreateCategory(t, "Action", "")
	contentID := factory.CreateContent(t, "The Batman", "movie", categoryID)
	factory.CreateFavorite(t, secondID, contentID)

	ctx := context.Background()

	// Удаление забирает с собой избранное профиля
	require.NoError(t, storage.DeleteProfile(ctx, secondID, uid))
	verify.VerifyProfileCount(t, uid, 1)
	verify.VerifyFavoriteCount(t, secondID, 0)

	// Последний профиль защищён
	err := storage.DeleteProfile(ctx, firstID, uid)
	assert.ErrorIs(t, err, models.ErrLastProfile)
}

func TestStorage_Catalog(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	actionID := factory.CreateCategory(t, "Action", "Fast and loud")
	kidsID := factory.CreateCategory(t, "Kids", "Safe for children")
	factory.CreateContent(t, "The Batman", "movie", actionID)
	factory.CreateContent(t, "Dark", "series", actionID)
	factory.CreateContent(t, "Coco", "movie", kidsID)

	ctx := context.Background()

	categories, err := storage.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	category, err := storage.GetCategory(ctx, kidsID)
	require.NoError(t, err)
	assert.Equal(t, "Kids", category.Name)

	_, err = storage.GetCategory(ctx, 99999)
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := storage.ListContent(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	action, err := storage.ListContentByCategory(ctx, actionID)
	require.NoError(t, err)
	assert.Len(t, action, 2)
	for _, c := range action {
		assert.Equal(t, "Action", c.CategoryName)
	}

	kidsOnly, err := storage.ListContentByCategoryNames(ctx, []string{"Kids"})
	require.NoError(t, err)
	require.Len(t, kidsOnly, 1)
	assert.Equal(t, "Coco", kidsOnly[0].Title)
}

func TestStorage_Favorites(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateAccount(t, "viewer@example.com", "hashedpassword", "premium", "")
	profileID := factory.CreateProfile(t, uid, "Main", false)
	categoryID := factory.CreateCategory(t, "Action", "")
	movieID := factory.CreateContent(t, "The Batman", "movie", categoryID)
	seriesID := factory.CreateContent(t, "Dark", "series", categoryID)

	ctx := context.Background()

	require.NoError(t, storage.AddFavorite(ctx, profileID, movieID))
	require.NoError(t, storage.AddFavorite(ctx, profileID, seriesID))

	// Дубликат отклоняется
	err := storage.AddFavorite(ctx, profileID, movieID)
	assert.ErrorIs(t, err, models.ErrFavoriteExists)

	// Избранное возвращается в порядке добавления
	favorites, err := storage.ListFavorites(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "The Batman", favorites[0].Title)
	assert.Equal(t, "Dark", favorites[1].Title)

	require.NoError(t, storage.RemoveFavorite(ctx, profileID, movieID))

	// Повторное удаление сообщает об отсутствии
	err = storage.RemoveFavorite(ctx, profileID, movieID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	favorites, err = storage.ListFavorites(ctx, profileID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Dark", favorites[0].Title)
}
