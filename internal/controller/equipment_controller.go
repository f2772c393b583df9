package controller

import (
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EquipmentController struct {
	EquipmentService *service.EquipmentService
}

func NewEquipmentController(equipmentService *service.EquipmentService) *EquipmentController {
	return &EquipmentController{EquipmentService: equipmentService}
}

type EquipmentRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer"`
	SerialNumber string `json:"serialNumber"`
	Notes        string `json:"notes"`
}

func (c *EquipmentController) Create(ctx *gin.Context) {
	var req EquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	e := &model.Equipment{
		Name:         req.Name,
		Type:         req.Type,
		Manufacturer: req.Manufacturer,
		SerialNumber: req.SerialNumber,
		Notes:        req.Notes,
	}
	if err := c.EquipmentService.Create(e); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, e)
}

func (c *EquipmentController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	e, err := c.EquipmentService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, e)
}

func (c *EquipmentController) List(ctx *gin.Context) {
	list, err := c.EquipmentService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

func (c *EquipmentController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req EquipmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	e, err := c.EquipmentService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	e.Name = req.Name
	e.Type = req.Type
	e.Manufacturer = req.Manufacturer
	e.SerialNumber = req.SerialNumber
	e.Notes = req.Notes

	if err := c.EquipmentService.Update(e); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, e)
}

func (c *EquipmentController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.EquipmentService.Delete(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
