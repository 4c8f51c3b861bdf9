package services

import (
	"context"
	"ecommerce-backend/models"
	"ecommerce-backend/repositories"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ICartService interface {
	AddToCart(ctx context.Context, userID string, slot int) error
	RemoveFromCart(ctx context.Context, userID string, slot int) error
	GetCart(ctx context.Context, userID string) (models.CartData, error)
}

// CartService reads the user, changes the cart in memory and writes the
// whole cart back. Concurrent requests for one user race; the last write wins.
type CartService struct {
	repository repositories.IUserRepository
}

func NewCartService(repository repositories.IUserRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) AddToCart(ctx context.Context, userID string, slot int) error {
	return s.mutate(ctx, userID, func(cart models.CartData) {
		if !cart.Increment(slot) {
			zap.S().Warnf("addtocart: slot %d does not exist for user %s", slot, userID)
		}
	})
}

func (s *CartService) RemoveFromCart(ctx context.Context, userID string, slot int) error {
	return s.mutate(ctx, userID, func(cart models.CartData) {
		cart.Decrement(slot)
	})
}

func (s *CartService) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.CartData, nil
}

func (s *CartService) mutate(ctx context.Context, userID string, change func(models.CartData)) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	change(user.CartData)

	if err := s.repository.UpdateCart(ctx, userID, user.CartData); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *CartService) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
