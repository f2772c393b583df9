package controller

import (
	"strconv"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KnowledgeController struct {
	KnowledgeService *service.KnowledgeService
}

func NewKnowledgeController(knowledgeService *service.KnowledgeService) *KnowledgeController {
	return &KnowledgeController{KnowledgeService: knowledgeService}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parentId"`
}

func (c *KnowledgeController) CreateCategory(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	cat := &model.KnowledgeCategory{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if err := c.KnowledgeService.CreateCategory(cat); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, cat)
}

// ListCategories godoc
// @Summary Knowledge base category tree
// @Description Root categories with one level of children preloaded.
// @Tags knowledge
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/knowledge/categories [get]
func (c *KnowledgeController) ListCategories(ctx *gin.Context) {
	list, err := c.KnowledgeService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

func (c *KnowledgeController) GetCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	cat, err := c.KnowledgeService.GetCategory(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, cat)
}

func (c *KnowledgeController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	cat, err := c.KnowledgeService.GetCategory(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	cat.Name = req.Name
	cat.Description = req.Description
	cat.ParentID = req.ParentID

	if err := c.KnowledgeService.UpdateCategory(cat); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, cat)
}

func (c *KnowledgeController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.KnowledgeService.DeleteCategory(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type MaterialRequest struct {
	CategoryID  uint   `json:"categoryId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
}

func (c *KnowledgeController) CreateMaterial(ctx *gin.Context) {
	var req MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	m := &model.KnowledgeMaterial{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
	}
	if err := c.KnowledgeService.CreateMaterial(m); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

// ListMaterials godoc
// @Summary Knowledge base materials
// @Tags knowledge
// @Produce json
// @Security ApiKeyAuth
// @Param categoryId query int false "filter by category"
// @Success 200 {object} util.Response
// @Router /api/knowledge/materials [get]
func (c *KnowledgeController) ListMaterials(ctx *gin.Context) {
	var categoryID uint
	if raw := ctx.Query("categoryId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid categoryId")
			return
		}
		categoryID = uint(v)
	}

	list, err := c.KnowledgeService.ListMaterials(categoryID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

func (c *KnowledgeController) GetMaterial(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	m, err := c.KnowledgeService.GetMaterial(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

func (c *KnowledgeController) UpdateMaterial(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req MaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	m, err := c.KnowledgeService.GetMaterial(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	m.CategoryID = req.CategoryID
	m.Title = req.Title
	m.Description = req.Description
	m.FileURL = req.FileURL
	m.FileType = req.FileType
	m.FileSize = req.FileSize

	if err := c.KnowledgeService.UpdateMaterial(m); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

func (c *KnowledgeController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.KnowledgeService.DeleteMaterial(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
