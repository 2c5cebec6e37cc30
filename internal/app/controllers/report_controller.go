package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshat/marksheet/internal/app/models/dto"
	"github.com/akshat/marksheet/internal/app/services"
)

// ReportController handles the admin report endpoints. All three are
// read-only and degrade to empty lists on aggregation failure.
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// ClassPerformance returns per-class statistics
func (c *ReportController) ClassPerformance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.reportService.ClassPerformance(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}

// SubjectPerformance returns per-subject statistics
func (c *ReportController) SubjectPerformance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.reportService.SubjectPerformance(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}

// TopPerformers returns the top students by average score
func (c *ReportController) TopPerformers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.reportService.TopPerformers(ctx.Request.Context()),
		Timestamp: time.Now(),
	})
}
