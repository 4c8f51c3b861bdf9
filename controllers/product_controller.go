package controllers

import (
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/models"
	"ecommerce-backend/services"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	NewCollections(ctx *gin.Context)
	PopularInWomen(ctx *gin.Context)
	Related(ctx *gin.Context)
	Create(ctx *gin.Context)
	Remove(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
}

func NewProductController(service services.IProductService) IProductController {
	return &ProductController{service: service}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll(ctx.Request.Context())
	c.respondList(ctx, products, err)
}

func (c *ProductController) NewCollections(ctx *gin.Context) {
	products, err := c.service.NewCollections(ctx.Request.Context())
	c.respondList(ctx, products, err)
}

func (c *ProductController) PopularInWomen(ctx *gin.Context) {
	products, err := c.service.PopularInWomen(ctx.Request.Context())
	c.respondList(ctx, products, err)
}

func (c *ProductController) Related(ctx *gin.Context) {
	var input dto.RelatedProductsInput
	// 空のボディはカテゴリ指定なしとして扱う
	if err := ctx.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidInput})
		return
	}

	products, err := c.service.Related(ctx.Request.Context(), input.Category)
	c.respondList(ctx, products, err)
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.CreateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidInput})
		return
	}

	product, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidPrice})
			return
		}
		zap.S().Errorf("Create product error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	zap.S().Infof("Product saved: id=%d name=%s", product.ID, product.Name)

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *ProductController) Remove(ctx *gin.Context) {
	var input dto.RemoveProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil || input.ID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidID})
		return
	}
	id, err := toInt(input.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Errors: constants.ErrInvalidID})
		return
	}

	if err := c.service.Remove(ctx.Request.Context(), id); err != nil {
		zap.S().Errorf("Remove product error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *ProductController) respondList(ctx *gin.Context, products []models.Product, err error) {
	if err != nil {
		zap.S().Errorf("List products error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, products)
}
