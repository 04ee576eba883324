package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rashed/campschool/internal/app/models"
	"github.com/rashed/campschool/internal/app/models/dto"
)

func TestAddClass_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeClassService{
		addClassFn: func(ctx context.Context, req dto.AddClassRequest) (int64, error) {
			return 9, nil
		},
	}
	router := gin.New()
	router.POST("/api/add-class", NewClassController(svc).AddClass)

	w := postJSON(router, "/api/add-class", dto.AddClassRequest{
		Name:            "Beginner Guitar",
		InstructorName:  "Jamie Fulton",
		InstructorEmail: "jamie@example.com",
		Price:           49.99,
		Quantity:        20,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result dto.InsertResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Acknowledged)
	assert.Equal(t, int64(9), result.InsertedID)
}

func TestAddClass_FreeClassWithNoSeats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got dto.AddClassRequest
	svc := &fakeClassService{
		addClassFn: func(ctx context.Context, req dto.AddClassRequest) (int64, error) {
			got = req
			return 10, nil
		},
	}
	router := gin.New()
	router.POST("/api/add-class", NewClassController(svc).AddClass)

	// Zero price and zero quantity are valid listings, not missing fields
	w := postJSON(router, "/api/add-class", dto.AddClassRequest{
		Name:            "Open Rehearsal",
		InstructorName:  "Jamie Fulton",
		InstructorEmail: "jamie@example.com",
		Price:           0,
		Quantity:        0,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), got.Price)
	assert.Equal(t, 0, got.Quantity)
}

func TestAddClass_InsertFailureEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeClassService{
		addClassFn: func(ctx context.Context, req dto.AddClassRequest) (int64, error) {
			return 0, errors.New("connection reset")
		},
	}
	router := gin.New()
	router.POST("/api/add-class", NewClassController(svc).AddClass)

	w := postJSON(router, "/api/add-class", dto.AddClassRequest{
		Name:            "Beginner Guitar",
		InstructorName:  "Jamie Fulton",
		InstructorEmail: "jamie@example.com",
		Price:           49.99,
		Quantity:        20,
	})

	// Insert failures answer 404 with the legacy envelope, typo included
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body dto.InsertFailureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "can not insert try again leter", body.Message)
	assert.False(t, body.Status)
}

func TestUpdateClass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got dto.ClassUpdateRequest
	svc := &fakeClassService{
		updateClassFn: func(ctx context.Context, req dto.ClassUpdateRequest) (int64, error) {
			got = req
			return 1, nil
		},
	}
	router := gin.New()
	router.PATCH("/api/class-update", NewClassController(svc).UpdateClass)

	feedback := "add a syllabus"
	body, _ := json.Marshal(dto.ClassUpdateRequest{ID: 4, Status: "denied", Feedback: &feedback})
	req := httptest.NewRequest(http.MethodPatch, "/api/class-update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "denied", got.Status)
	require.NotNil(t, got.Feedback)
	assert.Equal(t, "add a syllabus", *got.Feedback)
}

func TestGetTopClasses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeClassService{
		getTopClassesFn: func(ctx context.Context) ([]*models.Class, error) {
			return []*models.Class{
				{ID: 1, Name: "Guitar", TotalEnrolled: 30, Status: models.ClassApproved},
				{ID: 2, Name: "Piano", TotalEnrolled: 20, Status: models.ClassApproved},
			}, nil
		},
	}
	router := gin.New()
	router.GET("/topclasses", NewClassController(svc).GetTopClasses)

	req := httptest.NewRequest(http.MethodGet, "/topclasses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var classes []models.Class
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
	require.Len(t, classes, 2)
	assert.Equal(t, "Guitar", classes[0].Name)
}

func TestGetApprovedClasses_Error(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeClassService{
		getApprovedClassesFn: func(ctx context.Context) ([]*models.Class, error) {
			return nil, errors.New("query failed")
		},
	}
	router := gin.New()
	router.GET("/api/all-classes", NewClassController(svc).GetApprovedClasses)

	req := httptest.NewRequest(http.MethodGet, "/api/all-classes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
