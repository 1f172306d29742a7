package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reposapp/backend/internal/app/models/dto"
	"github.com/reposapp/backend/internal/app/services"
	"github.com/reposapp/backend/internal/middleware"
)

// ReplacementController handles replacement attendance records
type ReplacementController struct {
	replacementService services.ReplacementService
}

// NewReplacementController creates a new ReplacementController
func NewReplacementController(replacementService services.ReplacementService) *ReplacementController {
	return &ReplacementController{replacementService: replacementService}
}

// CreateReplacement books a student into a schedule slot
// @Summary Create a new replacement
// @Description Books a student into a schedule slot with a justification
// @Tags replacements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReplacementRequest true "Replacement information"
// @Success 201 {object} dto.APIResponse{data=models.Replacement} "Replacement created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /replacements [post]
func (c *ReplacementController) CreateReplacement(ctx *gin.Context) {
	var req dto.CreateReplacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actorID, _ := middleware.CurrentUserID(ctx)
	replacement, err := c.replacementService.Create(ctx, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(replacement, "Replacement created successfully"))
}

// GetReplacementByID retrieves a replacement record
// @Summary Get replacement by ID
// @Description Retrieves a specific replacement record by id
// @Tags replacements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Replacement ID"
// @Success 200 {object} dto.APIResponse{data=models.Replacement} "Replacement retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid replacement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Replacement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /replacements/{id} [get]
func (c *ReplacementController) GetReplacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	replacement, err := c.replacementService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(replacement, "Replacement retrieved successfully"))
}

// GetAllReplacements lists replacement records
// @Summary Get all replacements
// @Description Retrieves all replacement records
// @Tags replacements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Replacement} "Replacements retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /replacements [get]
func (c *ReplacementController) GetAllReplacements(ctx *gin.Context) {
	replacements, err := c.replacementService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(replacements, "Replacements retrieved successfully"))
}

// UpdateReplacement partially updates a replacement record
// @Summary Update replacement
// @Description Applies a partial update, typically toggling attendance
// @Tags replacements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Replacement ID"
// @Param request body dto.UpdateReplacementRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Replacement} "Replacement updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Replacement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /replacements/{id} [put]
func (c *ReplacementController) UpdateReplacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateReplacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	replacement, err := c.replacementService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(replacement, "Replacement updated successfully"))
}

// DeleteReplacement removes a replacement record
// @Summary Delete replacement
// @Description Deletes a replacement record by id
// @Tags replacements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Replacement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Replacement deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid replacement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Replacement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /replacements/{id} [delete]
func (c *ReplacementController) DeleteReplacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.replacementService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Replacement deleted"}, "Replacement deleted successfully"))
}
