package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rashed/campschool/internal/app/services"
	"github.com/rashed/campschool/internal/middleware"
)

// ReportController serves the read-only reporting aggregates
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetTopInstructors ranks instructors by total enrollment across their classes
// @Summary Top instructors
// @Tags reports
// @Produce json
// @Success 200 {array} dto.InstructorRanking
// @Router /topInstructor [get]
func (c *ReportController) GetTopInstructors(ctx *gin.Context) {
	rankings, err := c.reportService.TopInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rankings)
}
