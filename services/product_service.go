package services

import (
	"context"
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/models"
	"ecommerce-backend/repositories"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var ErrInvalidPrice = errors.New(constants.ErrInvalidPrice)

type IProductService interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	NewCollections(ctx context.Context) ([]models.Product, error)
	PopularInWomen(ctx context.Context) ([]models.Product, error)
	Related(ctx context.Context, category *string) ([]models.Product, error)
	Create(ctx context.Context, input dto.CreateProductInput) (*models.Product, error)
	Remove(ctx context.Context, id int) error
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindAll(ctx)
}

// NewCollections returns the most recently stored products, not the newest by date.
func (s *ProductService) NewCollections(ctx context.Context) ([]models.Product, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > constants.NewCollectionsLimit {
		products = products[len(products)-constants.NewCollectionsLimit:]
	}
	return products, nil
}

func (s *ProductService) PopularInWomen(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindByCategory(ctx, constants.PopularCategory, constants.PopularInWomenLimit)
}

// Related filters by exact category; a nil category matches every product.
func (s *ProductService) Related(ctx context.Context, category *string) ([]models.Product, error) {
	if category != nil {
		return s.repository.FindByCategory(ctx, *category, constants.RelatedProductsLimit)
	}
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > constants.RelatedProductsLimit {
		products = products[:constants.RelatedProductsLimit]
	}
	return products, nil
}

// Create assigns the next catalogue id (highest existing id + 1, starting at 1).
// Two concurrent calls can compute the same id.
func (s *ProductService) Create(ctx context.Context, input dto.CreateProductInput) (*models.Product, error) {
	newPrice, err := toPrice(input.NewPrice)
	if err != nil {
		return nil, err
	}
	oldPrice, err := toPrice(input.OldPrice)
	if err != nil {
		return nil, err
	}

	maxID, err := s.repository.MaxID(ctx)
	if err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := models.Product{
		ID:          maxID + 1,
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
		NewPrice:    newPrice,
		OldPrice:    oldPrice,
		Available:   available,
	}
	if err := s.repository.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Remove(ctx context.Context, id int) error {
	return s.repository.DeleteByProductID(ctx, id)
}

// toPrice accepts a JSON number or a numeric string. Missing and blank
// values are zero.
func toPrice(v interface{}) (float64, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case bool:
		return 0, ErrInvalidPrice
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return 0, nil
		}
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return 0, ErrInvalidPrice
		}
		return price, nil
	}
	price, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return price, nil
}
