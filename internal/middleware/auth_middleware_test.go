package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/pkg/apperrors"
	"github.com/rashed/campschool/internal/pkg/auth"
)

// fakeUserRepo implements repositories.IUserRepository for middleware tests.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByRole(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, id int64, role models.RoleType) (int64, error) {
	return 0, nil
}

func setupAuthRouter(t *testing.T, repo *fakeUserRepo) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campschool.test",
	})

	m := NewAuthMiddleware(jwtService, repo)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})
	router.GET("/admin-only", m.JWTAuth(), m.AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/student-only", m.JWTAuth(), m.StudentRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserRepo{})

	w := doRequest(router, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "unauthorized access", body["message"])
}

func TestJWTAuth_SchemelessHeader(t *testing.T) {
	router, jwtService := setupAuthRouter(t, &fakeUserRepo{})

	token, err := jwtService.GenerateToken("student@example.com", "")
	require.NoError(t, err)

	// A valid token without the Bearer scheme is still rejected
	w := doRequest(router, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserRepo{})

	w := doRequest(router, "/protected", "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router, _ := setupAuthRouter(t, &fakeUserRepo{})

	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "campschool.test",
	})
	token, err := expired.GenerateToken("student@example.com", "")
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router, jwtService := setupAuthRouter(t, &fakeUserRepo{})

	token, err := jwtService.GenerateToken("student@example.com", "Test Student")
	require.NoError(t, err)

	w := doRequest(router, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "student@example.com", body["email"])
}

func TestAdminRequired(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin@example.com":   {Email: "admin@example.com", Role: models.RoleAdmin},
		"student@example.com": {Email: "student@example.com", Role: models.RoleStudent},
	}}
	router, jwtService := setupAuthRouter(t, repo)

	adminToken, err := jwtService.GenerateToken("admin@example.com", "")
	require.NoError(t, err)
	studentToken, err := jwtService.GenerateToken("student@example.com", "")
	require.NoError(t, err)

	w := doRequest(router, "/admin-only", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "/admin-only", "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "forbidden message", body["message"])
}

func TestStudentRequired(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{
		"admin@example.com":   {Email: "admin@example.com", Role: models.RoleAdmin},
		"student@example.com": {Email: "student@example.com", Role: models.RoleStudent},
	}}
	router, jwtService := setupAuthRouter(t, repo)

	studentToken, err := jwtService.GenerateToken("student@example.com", "")
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateToken("admin@example.com", "")
	require.NoError(t, err)

	w := doRequest(router, "/student-only", "Bearer "+studentToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "/student-only", "Bearer "+adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequired_UnknownUser(t *testing.T) {
	router, jwtService := setupAuthRouter(t, &fakeUserRepo{})

	token, err := jwtService.GenerateToken("ghost@example.com", "")
	require.NoError(t, err)

	w := doRequest(router, "/admin-only", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
