package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/pkg/auth"
)

// TokenController issues bearer tokens for frontend-authenticated identities
type TokenController struct {
	jwtService *auth.JWTService
}

// NewTokenController creates a new TokenController
func NewTokenController(jwtService *auth.JWTService) *TokenController {
	return &TokenController{jwtService: jwtService}
}

// IssueToken signs a bearer token for the submitted identity claims
// @Summary Issue a bearer token
// @Description Signs the caller-supplied identity claims into a token with a fixed 24h expiry
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identity claims"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.MessageResponse "Invalid request data"
// @Router /jwt [post]
func (c *TokenController) IssueToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid token request"})
		return
	}

	token, err := c.jwtService.GenerateToken(req.Email, req.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "could not sign token"})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
