package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/app/services"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// PlacementController handles placement CRUD operations
type PlacementController struct {
	placementService *services.PlacementService
	logger           zerolog.Logger
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService, logger zerolog.Logger) *PlacementController {
	return &PlacementController{
		placementService: placementService,
		logger:           logger,
	}
}

// List returns placement rows with joined display names
// @Summary List placements
// @Description Returns placement rows joined with student and company names. Students see only their own rows. Sorted by student name; pass sortBy=student with sortOrder=desc for descending.
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param sortBy query string false "Sort column, only 'student' is recognized"
// @Param sortOrder query string false "Sort order: asc (default) or desc"
// @Success 200 {object} dto.APIResponse{data=[]dto.PlacementRow} "Placement rows"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workplace [get]
func (c *PlacementController) List(ctx *gin.Context) {
	desc := ctx.Query("sortBy") == "student" && ctx.Query("sortOrder") == "desc"

	rows, err := c.placementService.List(ctx.Request.Context(),
		middleware.GetRole(ctx), middleware.GetStudentID(ctx), desc)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: rows})
}

// Create adds a new placement row
// @Summary Add a placement
// @Description Creates a placement linking a student to a company. Student callers always create for themselves regardless of the posted student_id.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlacementRequest true "Placement fields"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request, date range or reference"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Role not allowed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workplace [post]
func (c *PlacementController) Create(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create placement payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	_, err := c.placementService.Create(ctx.Request.Context(), &req,
		middleware.GetRole(ctx), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.NewSuccessResponse("Placement added")})
}

// Update rewrites a placement row
// @Summary Update a placement
// @Description Rewrites the editable columns of a placement row. Students may only touch their own rows.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePlacementRequest true "Placement fields keyed by row_id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request, date range or reference"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Role not allowed"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workplace [put]
func (c *PlacementController) Update(ctx *gin.Context) {
	var req dto.UpdatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	err := c.placementService.Update(ctx.Request.Context(), &req,
		middleware.GetRole(ctx), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Placement updated")})
}

// Delete removes a placement row
// @Summary Delete a placement
// @Description Deletes a placement row by row_id. Students may only delete their own rows.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeletePlacementRequest true "Row id"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Placement deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Role not allowed"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /workplace [delete]
func (c *PlacementController) Delete(ctx *gin.Context) {
	var req dto.DeletePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	err := c.placementService.Delete(ctx.Request.Context(), req.RowID,
		middleware.GetRole(ctx), middleware.GetStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Placement deleted")})
}
