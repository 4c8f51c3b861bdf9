package controllers

import (
	"ecommerce-backend/constants"
	"ecommerce-backend/dto"
	"ecommerce-backend/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IUploadController interface {
	Upload(ctx *gin.Context)
}

type UploadController struct {
	service services.IUploadService
}

func NewUploadController(service services.IUploadService) IUploadController {
	return &UploadController{service: service}
}

func (c *UploadController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile(constants.UploadFieldName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": 0, "errors": constants.ErrFileRequired})
		return
	}

	filename, path := c.service.Destination(file.Filename)
	if err := ctx.SaveUploadedFile(file, path); err != nil {
		zap.S().Errorf("Failed to save upload %s: %v", path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{Success: 1, ImageURL: c.service.PublicURL(filename)})
}
