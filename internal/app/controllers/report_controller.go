package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/app/services"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// ReportController handles the reporting reads
type ReportController struct {
	reportService *services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// PlacementReport returns the placement/company/student join
// @Summary Placement report
// @Description Returns every placement with its company and student details. Students get only their own rows.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PlacementReportRow} "Report rows"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /report [get]
func (c *ReportController) PlacementReport(ctx *gin.Context) {
	rows, err := c.reportService.PlacementReport(ctx.Request.Context(),
		middleware.GetRole(ctx), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows})
}

// CompanyReport returns companies with placement counts
// @Summary Company report
// @Description Returns every company with the count of placements hosted there.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyReportRow} "Report rows"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /company-report [get]
func (c *ReportController) CompanyReport(ctx *gin.Context) {
	rows, err := c.reportService.CompanyReport(ctx.Request.Context(), middleware.GetRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows})
}
