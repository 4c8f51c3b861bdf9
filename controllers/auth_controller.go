package controllers

import (
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: err.Error()})
		return
	}

	token, err := c.service.Signup(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrUserAlreadyExists) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrUserAlreadyExists})
			return
		}
		zap.S().Errorf("Signup error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: err.Error()})
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidCredentials})
			return
		}
		zap.S().Errorf("Login error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}
