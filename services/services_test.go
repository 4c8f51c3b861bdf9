package services

import (
	"ecommerce-backend/infra"
	"ecommerce-backend/models"
	"ecommerce-backend/repositories"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupRepositories(t *testing.T) (repositories.IUserRepository, repositories.IProductRepository) {
	t.Helper()
	db := infra.SetupMemoryDB()
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	t.Cleanup(func() { infra.CloseDB(db) })
	return repositories.NewUserRepository(db), repositories.NewProductRepository(db)
}
