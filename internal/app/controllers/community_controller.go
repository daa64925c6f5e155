package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/app/services"
	"github.com/lucasmb/orkinet/internal/middleware"
	"github.com/lucasmb/orkinet/internal/pkg/helpers"
)

// CommunityController handles community endpoints
type CommunityController struct {
	communityService services.CommunityService
}

// NewCommunityController creates a new CommunityController
func NewCommunityController(communityService services.CommunityService) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

// CreateCommunity handles community creation
// @Summary Create a community
// @Description Creates a community with the session user as owner, member, and moderator
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunityRequest true "Community details"
// @Success 201 {object} dto.APIResponse{data=dto.CommunityResponse} "Community created"
// @Failure 400 {object} dto.ErrorResponse "Invalid category or fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Community name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities [post]
func (c *CommunityController) CreateCommunity(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.CreateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	community, err := c.communityService.CreateCommunity(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(community))
}

// GetCommunity handles retrieving a community by ID
// @Summary Get a community
// @Description Retrieves a community by its ID
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityResponse} "Community retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunity(ctx *gin.Context) {
	community, err := c.communityService.GetCommunity(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(community))
}

// ListCommunities handles listing communities
// @Summary List communities
// @Description Retrieves communities ordered newest first
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum results" default(20) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Communities retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities [get]
func (c *CommunityController) ListCommunities(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, helpers.DefaultListLimit)

	communities, err := c.communityService.ListCommunities(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.ListResponse{Items: communities}))
}

// ListOwnCommunities handles listing the session user's communities
// @Summary List own communities
// @Description Retrieves the communities the session user belongs to
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Communities retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/mine [get]
func (c *CommunityController) ListOwnCommunities(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	communities, err := c.communityService.ListUserCommunities(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.ListResponse{Items: communities}))
}

// ListCategories handles listing the fixed category set
// @Summary List community categories
// @Description Returns the fixed set of valid community categories
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CategoryListResponse} "Categories retrieved"
// @Router /communities/categories [get]
func (c *CommunityController) ListCategories(ctx *gin.Context) {
	categories := c.communityService.ListCategories()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.CategoryListResponse{Categories: categories}))
}

// JoinCommunity handles joining a community
// @Summary Join a community
// @Description Adds the session user to the community. Joining twice is a no-op.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse "Joined"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/join [post]
func (c *CommunityController) JoinCommunity(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.communityService.JoinCommunity(ctx, ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// LeaveCommunity handles leaving a community
// @Summary Leave a community
// @Description Removes the session user from the community. The owner cannot leave while being the only moderator of a community with other members.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse "Left"
// @Failure 400 {object} dto.ErrorResponse "Not a member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 409 {object} dto.ErrorResponse "Sole moderator cannot leave"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/leave [post]
func (c *CommunityController) LeaveCommunity(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.communityService.LeaveCommunity(ctx, ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// PromoteModerator handles granting the moderator role
// @Summary Promote a member to moderator
// @Description Grants the moderator role to a member. Owner only.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param request body dto.MemberActionRequest true "Member to promote"
// @Success 200 {object} dto.APIResponse "Promoted"
// @Failure 400 {object} dto.ErrorResponse "Target is not a member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Only the owner can promote"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/moderators [post]
func (c *CommunityController) PromoteModerator(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.MemberActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.communityService.PromoteModerator(ctx, ctx.Param("id"), userID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// DemoteModerator handles revoking the moderator role
// @Summary Demote a moderator
// @Description Revokes the moderator role from a member. Owner only; the owner cannot be demoted.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param userId path string true "Moderator to demote"
// @Success 200 {object} dto.APIResponse "Demoted"
// @Failure 400 {object} dto.ErrorResponse "Target is not a moderator"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Only the owner can demote"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/moderators/{userId} [delete]
func (c *CommunityController) DemoteModerator(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.communityService.DemoteModerator(ctx, ctx.Param("id"), userID, ctx.Param("userId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// RemoveMember handles kicking a member out
// @Summary Remove a member
// @Description Removes a member from the community. Owner or moderator; only the owner may remove another moderator, and the owner can never be removed.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param userId path string true "Member to remove"
// @Success 200 {object} dto.APIResponse "Removed"
// @Failure 400 {object} dto.ErrorResponse "Target is not a member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Insufficient role"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 409 {object} dto.ErrorResponse "Owner cannot be removed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/members/{userId} [delete]
func (c *CommunityController) RemoveMember(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.communityService.RemoveMember(ctx, ctx.Param("id"), userID, ctx.Param("userId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// UpdateCommunity handles editing a community
// @Summary Update a community
// @Description Applies a partial update to the community. Owner or moderator.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param request body dto.UpdateCommunityRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CommunityResponse} "Community updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid category or fields"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Insufficient role"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id} [put]
func (c *CommunityController) UpdateCommunity(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.UpdateCommunityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	community, err := c.communityService.UpdateCommunity(ctx, ctx.Param("id"), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(community))
}

// DeleteCommunity handles deleting a community
// @Summary Delete a community
// @Description Deletes the community and clears it from every member's profile. Owner only.
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse "Community deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Only the owner can delete"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id} [delete]
func (c *CommunityController) DeleteCommunity(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.communityService.DeleteCommunity(ctx, ctx.Param("id"), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// ListMembers handles listing community members with roles
// @Summary List community members
// @Description Resolves member profiles and tags each with its role
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Members retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Community not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /communities/{id}/members [get]
func (c *CommunityController) ListMembers(ctx *gin.Context) {
	members, err := c.communityService.ListMembersWithRoles(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.ListResponse{Items: members}))
}
