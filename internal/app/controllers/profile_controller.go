package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/app/services"
	"github.com/lucasmb/orkinet/internal/middleware"
)

// ProfileController handles profile endpoints
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile handles retrieving a profile by ID
// @Summary Get a profile
// @Description Retrieves a profile by its ID
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.GetProfile(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetOwnProfile handles retrieving the session user's profile
// @Summary Get own profile
// @Description Retrieves the profile of the authenticated user
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/me [get]
func (c *ProfileController) GetOwnProfile(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	profile, err := c.profileService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile handles editing a profile
// @Summary Update a profile
// @Description Applies a partial update to a profile. Only the owner may edit it.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Not the profile owner"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx, userID, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
