package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/middleware"
	"github.com/rashed/campschool/internal/pkg/apperrors"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers lists every registered user
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} dto.AuthErrorResponse
// @Failure 403 {object} dto.AuthErrorResponse
// @Router /api/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetInstructors lists instructor-role users, newest first
// @Summary List instructors
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/all-users [get]
func (c *UserController) GetInstructors(ctx *gin.Context) {
	instructors, err := c.userService.GetInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, instructors)
}

// AddUser registers a user with the default student role. A duplicate email
// answers 200 with a message envelope rather than an error status; callers
// branch on the payload shape.
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "User information"
// @Success 200 {object} dto.InsertResult "Insert result, or {message} when the email already exists"
// @Failure 400 {object} dto.MessageResponse
// @Router /api/add-user [post]
func (c *UserController) AddUser(ctx *gin.Context) {
	var req dto.AddUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid user data"})
		return
	}

	id, err := c.userService.AddUser(ctx, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "user already exists"})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewInsertResult(id))
}

// SetRole assigns a role to a user by id
// @Summary Set a user's role
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RoleSetRequest true "User id and role"
// @Success 200 {object} dto.UpdateResult
// @Failure 400 {object} dto.MessageResponse
// @Router /api/user/roleset [patch]
func (c *UserController) SetRole(ctx *gin.Context) {
	var req dto.RoleSetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid role data"})
		return
	}

	modified, err := c.userService.SetRole(ctx, req.ID, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUpdateResult(modified))
}

// CheckAdmin answers the admin role probe. A caller asking about an email
// other than their own is answered false without a lookup.
// @Summary Is this email an admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email to probe"
// @Success 200 {object} dto.AdminCheckResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /api/users/admin/{email} [get]
func (c *UserController) CheckAdmin(ctx *gin.Context) {
	email := ctx.Param("email")

	if ctx.GetString(middleware.ContextEmailKey) != email {
		ctx.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: false})
		return
	}

	isAdmin, err := c.userService.HasRole(ctx, email, models.RoleAdmin)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: isAdmin})
}

// CheckInstructor answers the instructor role probe
// @Summary Is this email an instructor
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email to probe"
// @Success 200 {object} dto.InstructorCheckResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /api/users/instructor/{email} [get]
func (c *UserController) CheckInstructor(ctx *gin.Context) {
	email := ctx.Param("email")

	if ctx.GetString(middleware.ContextEmailKey) != email {
		ctx.JSON(http.StatusOK, dto.InstructorCheckResponse{Instructor: false})
		return
	}

	isInstructor, err := c.userService.HasRole(ctx, email, models.RoleInstructor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstructorCheckResponse{Instructor: isInstructor})
}

// CheckStudent answers the student role probe
// @Summary Is this email a student
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Email to probe"
// @Success 200 {object} dto.StudentCheckResponse
// @Failure 401 {object} dto.AuthErrorResponse
// @Router /api/users/student/{email} [get]
func (c *UserController) CheckStudent(ctx *gin.Context) {
	email := ctx.Param("email")

	if ctx.GetString(middleware.ContextEmailKey) != email {
		ctx.JSON(http.StatusOK, dto.StudentCheckResponse{Student: false})
		return
	}

	isStudent, err := c.userService.HasRole(ctx, email, models.RoleStudent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentCheckResponse{Student: isStudent})
}
