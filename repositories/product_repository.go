package repositories

import (
	"context"
	"ecommerce-backend/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// IProductRepository returns products in storage order everywhere.
type IProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error)
	MaxID(ctx context.Context) (int, error)
	Create(ctx context.Context, product *models.Product) error
	DeleteByProductID(ctx context.Context, id int) error
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	result := r.db.WithContext(ctx).Order("storage_id").Find(&products)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "find products")
	}
	return products, nil
}

// FindByCategory matches the category exactly. A limit of zero or less means no limit.
func (r *ProductRepository) FindByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	products := []models.Product{}
	query := r.db.WithContext(ctx).Where("category = ?", category).Order("storage_id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "find products by category")
	}
	return products, nil
}

func (r *ProductRepository) MaxID(ctx context.Context) (int, error) {
	var maxID int
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "max product id")
	}
	return maxID, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	return nil
}

// DeleteByProductID removes the product with the given catalogue id.
// Deleting an id that does not exist is not an error.
func (r *ProductRepository) DeleteByProductID(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{}).Error; err != nil {
		return errors.Wrap(err, "delete product")
	}
	return nil
}
