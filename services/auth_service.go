package services

import (
	"context"
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/models"
	"ecommerce-backend/repositories"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New(constants.ErrUserAlreadyExists)
	ErrInvalidCredentials = errors.New(constants.ErrInvalidCredentials)
	ErrUserNotFound       = errors.New(constants.ErrUserNotFound)
	ErrInvalidToken       = errors.New(constants.ErrInvalidToken)
)

type IAuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (string, error)
	Login(ctx context.Context, email string, password string) (string, error)
	ParseToken(tokenString string) (string, error)
}

// TokenUser is the payload carried under the "user" claim.
type TokenUser struct {
	ID string `json:"id"`
}

type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

type AuthService struct {
	repository      repositories.IUserRepository
	secret          []byte
	passwordHashing bool
}

func NewAuthService(repository repositories.IUserRepository, secret string, passwordHashing bool) IAuthService {
	return &AuthService{
		repository:      repository,
		secret:          []byte(secret),
		passwordHashing: passwordHashing,
	}
}

func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (string, error) {
	_, err := s.repository.FindByEmail(ctx, input.Email)
	if err == nil {
		return "", ErrUserAlreadyExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return "", err
	}

	password := input.Password
	if s.passwordHashing {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", errors.Wrap(err, "hash password")
		}
		password = string(hashed)
	}

	user := models.User{
		Name:     input.Username,
		Email:    input.Email,
		Password: password,
		CartData: models.NewCartData(),
	}
	if err := s.repository.Create(ctx, &user); err != nil {
		// 同時登録で一意制約に引っかかった場合
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return "", ErrUserAlreadyExists
		}
		return "", err
	}

	return s.CreateToken(user.ID)
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	foundUser, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.passwordMatches(foundUser.Password, password) {
		return "", ErrInvalidCredentials
	}

	return s.CreateToken(foundUser.ID)
}

func (s *AuthService) passwordMatches(stored string, given string) bool {
	if s.passwordHashing {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

// CreateToken signs a token without expiry, in the same shape legacy clients hold.
func (s *AuthService) CreateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return tokenString, nil
}

// ParseToken verifies the signature and returns the embedded user id.
func (s *AuthService) ParseToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}
