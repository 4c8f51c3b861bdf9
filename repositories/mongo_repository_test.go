package repositories

import (
	"context"
	"ecommerce-backend/infra"
	"ecommerce-backend/models"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// MONGO_TEST_URI must point at a disposable server; a fresh database is used per test.
func setupMongoTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	client, _, err := infra.SetupMongo(ctx, uri)
	require.NoError(t, err)

	db := client.Database(fmt.Sprintf("ecommerce_test_%d", time.Now().UnixNano()))
	require.NoError(t, EnsureUserIndexes(ctx, db))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		infra.CloseMongo(client)
	})
	return db
}

func TestMongoUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoUserRepository(setupMongoTestDB(t))

	user := models.User{Name: "bob", Email: "bob@example.com", Password: "pw", CartData: models.NewCartData()}
	require.NoError(t, repo.Create(ctx, &user))
	assert.Len(t, user.ID, 24)

	err := repo.Create(ctx, &models.User{Email: "bob@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	user.CartData[10] = 2
	require.NoError(t, repo.UpdateCart(ctx, user.ID, user.CartData))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.CartData[10])
	assert.Len(t, found.CartData, models.CartSlots)

	_, err = repo.FindByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMongoProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoProductRepository(setupMongoTestDB(t))

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, maxID)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Product{ID: i, Category: "women"}))
	}

	maxID, err = repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, maxID)

	women, err := repo.FindByCategory(ctx, "women", 4)
	require.NoError(t, err)
	assert.Len(t, women, 4)

	require.NoError(t, repo.DeleteByProductID(ctx, 3))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
