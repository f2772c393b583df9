package controller

import (
	"errors"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type FileController struct {
	FileService *service.FileService
}

func NewFileController(fileService *service.FileService) *FileController {
	return &FileController{FileService: fileService}
}

// Upload godoc
// @Summary Upload a file
// @Description Accepts one multipart file. An optional uploadId form field enables progress polling.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "file"
// @Param uploadId formData string false "client-chosen id for progress tracking"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/files/upload [post]
func (c *FileController) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	uploadID := ctx.PostForm("uploadId")

	result, err := c.FileService.SaveUpload(ctx.Request.Context(), fh, uploadID)
	if err != nil {
		if errors.Is(err, service.ErrFileTooLarge) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// Progress godoc
// @Summary Upload progress
// @Tags files
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "upload id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/files/progress/{id} [get]
func (c *FileController) Progress(ctx *gin.Context) {
	progress, err := c.FileService.GetProgress(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
