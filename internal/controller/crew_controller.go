package controller

import (
	"errors"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CrewController struct {
	CrewService *service.CrewService
}

func NewCrewController(crewService *service.CrewService) *CrewController {
	return &CrewController{CrewService: crewService}
}

type CrewRequest struct {
	Name          string `json:"name" binding:"required"`
	EquipmentType string `json:"equipmentType"`
	Description   string `json:"description"`
}

func (c *CrewController) Create(ctx *gin.Context) {
	var req CrewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	crew := &model.Crew{
		Name:          req.Name,
		EquipmentType: req.EquipmentType,
		Description:   req.Description,
	}
	if err := c.CrewService.Create(crew); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, crew)
}

func (c *CrewController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	crew, err := c.CrewService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, crew)
}

func (c *CrewController) List(ctx *gin.Context) {
	list, err := c.CrewService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

func (c *CrewController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CrewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	crew, err := c.CrewService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	crew.Name = req.Name
	crew.EquipmentType = req.EquipmentType
	crew.Description = req.Description

	if err := c.CrewService.Update(crew); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, crew)
}

func (c *CrewController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CrewService.Delete(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type CrewMembersRequest struct {
	MemberIDs []uint `json:"memberIds"`
}

// SetMembers godoc
// @Summary Replace the crew's member set
// @Description Releases current members and attaches the given personnel in one transaction.
// @Tags crews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "crew id"
// @Param body body CrewMembersRequest true "personnel ids"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/crews/{id}/members [put]
func (c *CrewController) SetMembers(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CrewMembersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	crew, err := c.CrewService.ReassignMembers(id, req.MemberIDs)
	if err != nil {
		if errors.Is(err, util.ErrPersonnelNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, crew)
}
