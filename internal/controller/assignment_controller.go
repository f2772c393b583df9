package controller

import (
	"errors"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

func (c *AssignmentController) ListByCourse(ctx *gin.Context) {
	courseID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	list, err := c.AssignmentService.ListByCourse(courseID)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

type AssignRequest struct {
	PersonnelID uint `json:"personnelId" binding:"required"`
}

// Assign godoc
// @Summary Grant a personnel access to a course
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param body body AssignRequest true "personnel to assign"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/assignments [post]
func (c *AssignmentController) Assign(ctx *gin.Context) {
	courseID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.Assign(courseID, req.PersonnelID)
	if err != nil {
		if errors.Is(err, util.ErrAssignmentExists) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

type AssignmentStatusRequest struct {
	Status model.AssignmentStatus `json:"status" binding:"required"`
}

func (c *AssignmentController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req AssignmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	assignment, err := c.AssignmentService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, util.ErrInvalidStatus) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

func (c *AssignmentController) Remove(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.AssignmentService.Remove(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
