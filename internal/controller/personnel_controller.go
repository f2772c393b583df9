package controller

import (
	"errors"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PersonnelController struct {
	PersonnelService *service.PersonnelService
}

func NewPersonnelController(personnelService *service.PersonnelService) *PersonnelController {
	return &PersonnelController{PersonnelService: personnelService}
}

type PersonnelRequest struct {
	LastName   string `json:"lastName" binding:"required"`
	FirstName  string `json:"firstName" binding:"required"`
	MiddleName string `json:"middleName"`
	Rank       string `json:"rank"`
	Position   string `json:"position"`
	CrewID     *uint  `json:"crewId"`
}

func (c *PersonnelController) Create(ctx *gin.Context) {
	var req PersonnelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	p := &model.Personnel{
		LastName:   req.LastName,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		Rank:       req.Rank,
		Position:   req.Position,
		CrewID:     req.CrewID,
	}
	if err := c.PersonnelService.Create(p); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, p)
}

func (c *PersonnelController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	p, err := c.PersonnelService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

func (c *PersonnelController) List(ctx *gin.Context) {
	list, err := c.PersonnelService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

func (c *PersonnelController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req PersonnelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	p, err := c.PersonnelService.Get(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	p.LastName = req.LastName
	p.FirstName = req.FirstName
	p.MiddleName = req.MiddleName
	p.Rank = req.Rank
	p.Position = req.Position
	p.CrewID = req.CrewID

	if err := c.PersonnelService.Update(p); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

func (c *PersonnelController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.PersonnelService.Delete(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type CreateAccountRequest struct {
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     authz.Role `json:"role" binding:"required"`
}

// CreateAccount godoc
// @Summary Provision a login for a personnel record
// @Description Creates the user and links it to the personnel record in one transaction.
// @Tags personnel
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "personnel id"
// @Param body body CreateAccountRequest true "account data"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/personnel/{id}/create-account [post]
func (c *PersonnelController) CreateAccount(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	user, err := c.PersonnelService.CreateAccount(id, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAccountExists),
			errors.Is(err, util.ErrEmailRegistered),
			errors.Is(err, util.ErrUnknownRole):
			util.BadRequest(ctx, err.Error())
		default:
			util.StoreError(ctx, err)
		}
		return
	}
	util.Created(ctx, gin.H{"id": user.ID, "email": user.Email, "role": user.Role.Name})
}
