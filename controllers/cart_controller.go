package controllers

import (
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/middlewares"
	"ecommerce-backend/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ICartController interface {
	Add(ctx *gin.Context)
	Remove(ctx *gin.Context)
	Get(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
}

func NewCartController(service services.ICartService) ICartController {
	return &CartController{service: service}
}

func (c *CartController) Add(ctx *gin.Context) {
	userID, slot, ok := c.bindItem(ctx)
	if !ok {
		return
	}

	if err := c.service.AddToCart(ctx.Request.Context(), userID, slot); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, "Added")
}

func (c *CartController) Remove(ctx *gin.Context) {
	userID, slot, ok := c.bindItem(ctx)
	if !ok {
		return
	}

	if err := c.service.RemoveFromCart(ctx.Request.Context(), userID, slot); err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, "Removed")
}

func (c *CartController) Get(ctx *gin.Context) {
	userID := ctx.GetString(middlewares.UserIDKey)
	if userID == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	cart, err := c.service.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

func (c *CartController) bindItem(ctx *gin.Context) (string, int, bool) {
	userID := ctx.GetString(middlewares.UserIDKey)
	if userID == "" {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return "", 0, false
	}

	var input dto.CartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil || input.ItemID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidItemID})
		return "", 0, false
	}
	slot, err := toInt(input.ItemID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidItemID})
		return "", 0, false
	}
	return userID, slot, true
}

func (c *CartController) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"errors": constants.ErrUserNotFound})
		return
	}
	zap.S().Errorf("Cart error: %v", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
}
