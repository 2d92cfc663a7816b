package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mkarvonen/placementtrack/internal/app/models/dto"
	"github.com/mkarvonen/placementtrack/internal/app/services"
	"github.com/mkarvonen/placementtrack/internal/middleware"
)

// CompanyController handles company reference data operations
type CompanyController struct {
	companyService *services.CompanyService
	logger         zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		logger:         logger,
	}
}

// ListRefs returns the minimal company list
// @Summary List companies for selection
// @Description Returns id and name of every company, used to populate selection inputs.
// @Tags companies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CompanyRef} "Company list"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) ListRefs(ctx *gin.Context) {
	companies, err := c.companyService.ListRefs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: companies})
}

// ListFull returns every company column
// @Summary List companies with full detail
// @Description Returns every company row for the management view.
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Company list"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies-full [get]
func (c *CompanyController) ListFull(ctx *gin.Context) {
	companies, err := c.companyService.ListFull(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: companies})
}

// Create adds a new company row
// @Summary Add a company
// @Description Creates a new company row. Both teachers and students may add companies.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company fields"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Company created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /add-company [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create company payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if _, err := c.companyService.CreateCompany(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: dto.NewSuccessResponse("Company added")})
}

// Update rewrites a company row
// @Summary Update a company
// @Description Rewrites every editable column of a company row. Teacher only.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company id"
// @Param request body dto.UpdateCompanyRequest true "Company fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Company updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid session"
// @Failure 403 {object} dto.ErrorResponse "Not a teacher"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid company id").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.companyService.UpdateCompany(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSuccessResponse("Company updated")})
}
