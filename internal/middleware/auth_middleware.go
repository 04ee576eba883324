package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/app/repositories"
	"github.com/rashed/campschool/internal/pkg/auth"
	"github.com/rashed/campschool/internal/pkg/logger"
)

// Context key for the authenticated identity
const ContextEmailKey = "email"

// Legacy rejection messages; clients match on these strings.
const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden message"
)

// AuthMiddleware for authentication and authorization. Role guards re-read
// the role from the users store by the authenticated email rather than
// trusting a token claim, so a role change takes effect on the next request.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and attaches the email claim to the
// request context. Missing, malformed and expired tokens are all rejected
// with the same 401 envelope.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError(msgUnauthorized))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError(msgUnauthorized))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError(msgUnauthorized))
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// AdminRequired proceeds only when the authenticated email belongs to an
// admin. Must run after JWTAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return m.roleRequired(models.RoleAdmin)
}

// StudentRequired proceeds only when the authenticated email belongs to a
// student. Must run after JWTAuth.
func (m *AuthMiddleware) StudentRequired() gin.HandlerFunc {
	return m.roleRequired(models.RoleStudent)
}

func (m *AuthMiddleware) roleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(ContextEmailKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewAuthError(msgUnauthorized))
			return
		}

		user, err := m.userRepo.GetByEmail(c.Request.Context(), email.(string))
		if err != nil || user.Role != role {
			if err != nil {
				logger.Debug().Err(err).Str("email", email.(string)).Msg("Role lookup failed")
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewAuthError(msgForbidden))
			return
		}

		c.Next()
	}
}
