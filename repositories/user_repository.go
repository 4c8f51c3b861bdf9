package repositories

import (
	"context"
	"ecommerce-backend/models"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateCart(ctx context.Context, id string, cart models.CartData) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isDuplicate(result.Error) {
			return ErrDuplicateKey
		}
		return errors.Wrap(result.Error, "create user")
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "find user by email")
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(result.Error, "find user by id")
	}
	return &user, nil
}

// UpdateCart overwrites the whole cart of the user.
func (r *UserRepository) UpdateCart(ctx context.Context, id string, cart models.CartData) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{ID: id}).
		Select("CartData").
		Updates(&models.User{CartData: cart})
	if result.Error != nil {
		return errors.Wrap(result.Error, "update cart")
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "UNIQUE constraint")
}
