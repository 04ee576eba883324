package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/middleware"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// CartController handles the student's selected-classes cart
type CartController struct {
	cartService services.CartService
}

// NewCartController creates a new CartController
func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// AddSelection puts a class into a student's cart. An existing
// (classId, studentEmail) pair answers 200 with the duplicate message.
// @Summary Select a class
// @Tags cart
// @Accept json
// @Produce json
// @Param request body dto.AddSelectClassRequest true "Class and student"
// @Success 200 {object} dto.InsertResult "Insert result, or {message} when already selected"
// @Failure 404 {object} dto.InsertFailureResponse
// @Router /api/add-select-class [post]
func (c *CartController) AddSelection(ctx *gin.Context) {
	var req dto.AddSelectClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid selection data"})
		return
	}

	id, err := c.cartService.AddSelection(ctx, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCartItemAlreadySelected) {
			ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Already select"})
			return
		}
		ctx.JSON(http.StatusNotFound, dto.InsertFailureResponse{
			Message: insertFailureMessage,
			Status:  false,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInsertResult(id))
}

// GetSelections lists a student's cart entries, newest first
// @Summary List a student's selected classes
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param email path string true "Student email"
// @Success 200 {array} models.SelectedClass
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /api/all-select-class/{email} [get]
func (c *CartController) GetSelections(ctx *gin.Context) {
	email := ctx.Param("email")

	entries, err := c.cartService.GetSelectionsByStudent(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// GetSelection fetches one cart entry by id
// @Summary Get a selected class
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Selection id"
// @Success 200 {object} models.SelectedClass
// @Failure 404 {object} dto.MessageResponse
// @Router /api/select-class/{id} [get]
func (c *CartController) GetSelection(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid selection id"})
		return
	}

	entry, err := c.cartService.GetSelection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// RemoveSelection deletes a cart entry by id
// @Summary Remove a selected class
// @Tags cart
// @Produce json
// @Param id path int true "Selection id"
// @Success 200 {object} dto.DeleteResult
// @Router /api/select-class/{id} [delete]
func (c *CartController) RemoveSelection(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid selection id"})
		return
	}

	deleted, err := c.cartService.RemoveSelection(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDeleteResult(deleted))
}
