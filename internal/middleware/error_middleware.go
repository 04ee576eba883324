package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/models/dto"
	"github.com/rashed/campschool/internal/pkg/apperrors"
	"github.com/rashed/campschool/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the HTTP surface. Soft conflicts
// (duplicate user, duplicate cart entry) never reach this function; they are
// answered inline with 200 envelopes.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrClassNotFound),
		errors.Is(err, apperrors.ErrCartItemNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: err.Error()})

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewAuthError("forbidden message"))

	case errors.Is(err, apperrors.ErrPaymentGateway):
		logger.Error().Err(err).Msg("Payment gateway call failed")
		c.JSON(http.StatusBadGateway, dto.MessageResponse{Message: "payment gateway error"})

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
	}
}
