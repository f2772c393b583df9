package controller

import (
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive godoc
// @Summary Enable or disable an account
// @Description A disabled account keeps its data but its tokens are rejected on the next request.
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "user id"
// @Param body body SetActiveRequest true "target state"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id}/active [put]
func (c *UserController) SetActive(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetActive(id, *req.Active)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
