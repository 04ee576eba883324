package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/middleware"
)

// insertFailureMessage is preserved verbatim from the original API, typo and
// all; at least one frontend matches on it.
const insertFailureMessage = "can not insert try again leter"

// ClassController handles class-related operations
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// GetClassList lists every class regardless of status
// @Summary List all classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Class
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /api/class-list [get]
func (c *ClassController) GetClassList(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}

// AddClass submits a new class listing; it starts out pending
// @Summary Submit a class
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.AddClassRequest true "Class information"
// @Success 200 {object} dto.InsertResult
// @Failure 404 {object} dto.InsertFailureResponse "Insert failed"
// @Router /api/add-class [post]
func (c *ClassController) AddClass(ctx *gin.Context) {
	var req dto.AddClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid class data"})
		return
	}

	id, err := c.classService.AddClass(ctx, req)
	if err != nil {
		// Insert failures answer 404 with the legacy envelope
		ctx.JSON(http.StatusNotFound, dto.InsertFailureResponse{
			Message: insertFailureMessage,
			Status:  false,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInsertResult(id))
}

// UpdateClass sets a class's status and feedback by id
// @Summary Update class status and feedback
// @Tags classes
// @Accept json
// @Produce json
// @Param request body dto.ClassUpdateRequest true "Class id, status and feedback"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.MessageResponse
// @Router /api/class-update [patch]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	var req dto.ClassUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid class update data"})
		return
	}

	modified, err := c.classService.UpdateClass(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdateResult(modified))
}

// GetApprovedClasses lists approved classes, newest first
// @Summary List approved classes
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /api/all-classes [get]
func (c *ClassController) GetApprovedClasses(ctx *gin.Context) {
	classes, err := c.classService.GetApprovedClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}

// GetTopClasses lists the six most-enrolled approved classes
// @Summary List popular classes
// @Tags classes
// @Produce json
// @Success 200 {array} models.Class
// @Router /topclasses [get]
func (c *ClassController) GetTopClasses(ctx *gin.Context) {
	classes, err := c.classService.GetTopClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}
