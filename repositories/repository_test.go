package repositories

import (
	"context"
	"ecommerce-backend/infra"
	"ecommerce-backend/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := infra.SetupMemoryDB()
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	t.Cleanup(func() { infra.CloseDB(db) })
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := models.User{Name: "alice", Email: "alice@example.com", Password: "pw", CartData: models.NewCartData()}
	require.NoError(t, repo.Create(ctx, &user))
	assert.Len(t, user.ID, 24)
	assert.False(t, user.Date.IsZero())

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Len(t, found.CartData, models.CartSlots)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Name)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "pw"}))
	err := repo.Create(ctx, &models.User{Email: "dup@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserRepositoryUpdateCart(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := models.User{Email: "cart@example.com", Password: "pw", CartData: models.NewCartData()}
	require.NoError(t, repo.Create(ctx, &user))

	user.CartData[3] = 4
	require.NoError(t, repo.UpdateCart(ctx, user.ID, user.CartData))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.CartData[3])
	assert.Len(t, found.CartData, models.CartSlots)

	err = repo.UpdateCart(ctx, "000000000000000000000000", user.CartData)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(setupTestDB(t))

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, maxID)

	for i, category := range []string{"women", "men", "women", "Women", "kid", "women"} {
		require.NoError(t, repo.Create(ctx, &models.Product{ID: i + 1, Name: category, Category: category, Available: true}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}

	women, err := repo.FindByCategory(ctx, "women", 2)
	require.NoError(t, err)
	require.Len(t, women, 2)
	assert.Equal(t, 1, women[0].ID)
	assert.Equal(t, 3, women[1].ID)

	women, err = repo.FindByCategory(ctx, "women", 0)
	require.NoError(t, err)
	assert.Len(t, women, 3)

	maxID, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, maxID)

	require.NoError(t, repo.DeleteByProductID(ctx, 3))
	require.NoError(t, repo.DeleteByProductID(ctx, 42))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	ids := []int{}
	for _, p := range all {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids)
}
