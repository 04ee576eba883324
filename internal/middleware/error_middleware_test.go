package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashed/campschool/internal/pkg/apperrors"
)

func serveWithError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		HandleAPIError(c, err)
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandleAPIError_NotFound(t *testing.T) {
	for _, err := range []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrCartItemNotFound,
		apperrors.ErrResourceNotFound,
	} {
		w := serveWithError(err)
		assert.Equal(t, http.StatusNotFound, w.Code, err.Error())
	}
}

func TestHandleAPIError_WrappedError(t *testing.T) {
	w := serveWithError(fmt.Errorf("looking up cart: %w", apperrors.ErrCartItemNotFound))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleAPIError_PermissionDenied(t *testing.T) {
	w := serveWithError(apperrors.ErrPermissionDenied)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "forbidden message", body["message"])
}

func TestHandleAPIError_PaymentGateway(t *testing.T) {
	w := serveWithError(fmt.Errorf("%w: card network down", apperrors.ErrPaymentGateway))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleAPIError_Unknown(t *testing.T) {
	w := serveWithError(errors.New("something broke"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body["message"])
}
