package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akshat/marksheet/internal/app/models/dto"
	"github.com/akshat/marksheet/internal/app/services"
	"github.com/akshat/marksheet/internal/middleware"
)

// MarksController handles marks record endpoints
type MarksController struct {
	marksService *services.MarksService
}

// NewMarksController creates a new MarksController
func NewMarksController(marksService *services.MarksService) *MarksController {
	return &MarksController{
		marksService: marksService,
	}
}

// Add inserts a marks record for an existing student (admin only)
func (c *MarksController) Add(ctx *gin.Context) {
	var req dto.MarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid marks data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	marks := req.ToModel()
	if err := c.marksService.Add(ctx.Request.Context(), marks); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// ForStudent lists all marks for a roll number; students can only read
// their own
func (c *MarksController) ForStudent(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	rollNumber := ctx.Param("student_id")
	if rollNumber == "" {
		rollNumber = ctx.Param("roll")
	}

	marks, err := c.marksService.ForStudent(ctx.Request.Context(), identity, rollNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// ListAll returns every marks record with the owning student's name
// (admin only)
func (c *MarksController) ListAll(ctx *gin.Context) {
	marks, err := c.marksService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// GetByID fetches a single marks record; students can only read records
// referencing their own roll number
func (c *MarksController) GetByID(ctx *gin.Context) {
	identity, ok := middleware.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	marks, err := c.marksService.GetByID(ctx.Request.Context(), identity, ctx.Param("marks_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// UpdateByID updates a marks record (admin only)
func (c *MarksController) UpdateByID(ctx *gin.Context) {
	var req dto.MarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid marks data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.marksService.UpdateByID(ctx.Request.Context(), ctx.Param("marks_id"), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Marks updated successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteByID deletes a marks record (admin only)
func (c *MarksController) DeleteByID(ctx *gin.Context) {
	if err := c.marksService.DeleteByID(ctx.Request.Context(), ctx.Param("marks_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Marks deleted successfully"},
		Timestamp: time.Now(),
	})
}
