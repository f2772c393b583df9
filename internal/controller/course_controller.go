package controller

import (
	"errors"
	"strconv"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/service"
	"trainrec_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// ListCourses godoc
// @Summary Course catalog
// @Description Courses in catalog order with a per-caller canAccess flag. User-role callers do not see unpublished courses.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.CourseService.List(ctx.Request.Context(), claims)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// GetCourse godoc
// @Summary One course with modules and lessons
// @Description For the User role an unpublished or inaccessible course answers 404.
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	view, err := c.CourseService.Get(claims, id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type CourseRequest struct {
	Title                    string `json:"title" binding:"required"`
	Description              string `json:"description"`
	Content                  string `json:"content"`
	IsPublished              bool   `json:"isPublished"`
	OrderIndex               int    `json:"orderIndex"`
	RequiresPreviousCourseID *uint  `json:"requiresPreviousCourseId"`
}

func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	course := &model.Course{
		Title:                    req.Title,
		Description:              req.Description,
		Content:                  req.Content,
		IsPublished:              req.IsPublished,
		OrderIndex:               req.OrderIndex,
		RequiresPreviousCourseID: req.RequiresPreviousCourseID,
	}
	if err := c.CourseService.Create(ctx.Request.Context(), course); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Courses.FindByID(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Content = req.Content
	course.IsPublished = req.IsPublished
	course.OrderIndex = req.OrderIndex
	course.RequiresPreviousCourseID = req.RequiresPreviousCourseID

	if err := c.CourseService.Update(ctx.Request.Context(), course); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CourseService.Delete(ctx.Request.Context(), id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// CompleteCourse godoc
// @Summary Mark the caller's assignment completed
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/complete [post]
func (c *CourseController) CompleteCourse(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	assignment, err := c.CourseService.CompleteCourse(claims, id)
	if err != nil {
		if errors.Is(err, util.ErrNotAssigned) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

type ModuleRequest struct {
	Title                    string `json:"title" binding:"required"`
	Description              string `json:"description"`
	OrderIndex               int    `json:"orderIndex"`
	RequiresPreviousModuleID *uint  `json:"requiresPreviousModuleId"`
}

func (c *CourseController) CreateModule(ctx *gin.Context) {
	courseID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	module := &model.CourseModule{
		CourseID:                 courseID,
		Title:                    req.Title,
		Description:              req.Description,
		OrderIndex:               req.OrderIndex,
		RequiresPreviousModuleID: req.RequiresPreviousModuleID,
	}
	if err := c.CourseService.CreateModule(module); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

func (c *CourseController) GetModule(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	module, canOpen, err := c.CourseService.GetModule(claims, id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"module": module, "canAccess": canOpen})
}

func (c *CourseController) UpdateModule(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	module, err := c.CourseService.Courses.FindModuleByID(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	module.Title = req.Title
	module.Description = req.Description
	module.OrderIndex = req.OrderIndex
	module.RequiresPreviousModuleID = req.RequiresPreviousModuleID

	if err := c.CourseService.UpdateModule(module); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, module)
}

func (c *CourseController) DeleteModule(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CourseService.DeleteModule(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

type LessonRequest struct {
	Title                    string `json:"title" binding:"required"`
	Content                  string `json:"content"`
	OrderIndex               int    `json:"orderIndex"`
	RequiresPreviousLessonID *uint  `json:"requiresPreviousLessonId"`
}

func (c *CourseController) CreateLesson(ctx *gin.Context) {
	moduleID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	lesson := &model.Lesson{
		ModuleID:                 moduleID,
		Title:                    req.Title,
		Content:                  req.Content,
		OrderIndex:               req.OrderIndex,
		RequiresPreviousLessonID: req.RequiresPreviousLessonID,
	}
	if err := c.CourseService.CreateLesson(lesson); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

func (c *CourseController) GetLesson(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	lesson, canOpen, err := c.CourseService.GetLesson(claims, id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lesson": lesson, "canAccess": canOpen})
}

func (c *CourseController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationError(ctx, err.Error())
		return
	}

	lesson, err := c.CourseService.Courses.FindLessonByID(id)
	if err != nil {
		util.StoreError(ctx, err)
		return
	}

	lesson.Title = req.Title
	lesson.Content = req.Content
	lesson.OrderIndex = req.OrderIndex
	lesson.RequiresPreviousLessonID = req.RequiresPreviousLessonID

	if err := c.CourseService.UpdateLesson(lesson); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

func (c *CourseController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CourseService.DeleteLesson(id); err != nil {
		util.StoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// CompleteLesson godoc
// @Summary Record a lesson completion for the caller
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/complete [post]
func (c *CourseController) CompleteLesson(ctx *gin.Context) {
	claims := util.CurrentUser(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	err := c.CourseService.CompleteLesson(claims, id)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonNotAccessible):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrNotAssigned):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.StoreError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"completed": id})
}
