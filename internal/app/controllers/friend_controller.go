package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/app/services"
	"github.com/lucasmb/orkinet/internal/middleware"
)

// FriendController handles social graph endpoints
type FriendController struct {
	friendService services.FriendService
}

// NewFriendController creates a new FriendController
func NewFriendController(friendService services.FriendService) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

// SendRequest handles sending a friend request
// @Summary Send a friend request
// @Description Records a friend request from the session user to the target user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FriendRequestAction true "Target user"
// @Success 200 {object} dto.APIResponse "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Self request or invalid target"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Target profile not found"
// @Failure 409 {object} dto.ErrorResponse "Already friends or request already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/requests [post]
func (c *FriendController) SendRequest(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.FriendRequestAction
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.friendService.SendRequest(ctx, userID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// AcceptRequest handles accepting a friend request
// @Summary Accept a friend request
// @Description Promotes an incoming friend request into a friendship
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FriendRequestAction true "Requesting user"
// @Success 200 {object} dto.APIResponse "Request accepted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No such friend request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/requests/accept [post]
func (c *FriendController) AcceptRequest(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.FriendRequestAction
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.friendService.AcceptRequest(ctx, userID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// RejectRequest handles rejecting a friend request
// @Summary Reject a friend request
// @Description Discards an incoming friend request
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FriendRequestAction true "Requesting user"
// @Success 200 {object} dto.APIResponse "Request rejected"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No such friend request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/requests/reject [post]
func (c *FriendController) RejectRequest(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	var req dto.FriendRequestAction
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.friendService.RejectRequest(ctx, userID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// RemoveFriend handles removing a friend
// @Summary Remove a friend
// @Description Deletes the friendship edge between the session user and the target. Safe to retry.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friend profile ID"
// @Success 200 {object} dto.APIResponse "Friend removed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/{id} [delete]
func (c *FriendController) RemoveFriend(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	if err := c.friendService.RemoveFriend(ctx, userID, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// ListFriends handles listing the session user's friends
// @Summary List friends
// @Description Resolves the session user's friend IDs into profile summaries
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendListResponse} "Friends retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends [get]
func (c *FriendController) ListFriends(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	friends, err := c.friendService.ListFriends(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.FriendListResponse{Friends: friends}))
}

// ListIncomingRequests handles listing received friend requests
// @Summary List incoming friend requests
// @Description Resolves the profiles that asked to befriend the session user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendRequestListResponse} "Requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/requests/incoming [get]
func (c *FriendController) ListIncomingRequests(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	requests, err := c.friendService.ListIncomingRequests(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.FriendRequestListResponse{Requests: requests}))
}

// ListOutgoingRequests handles listing sent friend requests
// @Summary List outgoing friend requests
// @Description Resolves the profiles the session user asked to befriend
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.FriendRequestListResponse} "Requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /friends/requests/outgoing [get]
func (c *FriendController) ListOutgoingRequests(ctx *gin.Context) {
	userID, ok := middleware.SessionUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, nil)
		return
	}

	requests, err := c.friendService.ListOutgoingRequests(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.FriendRequestListResponse{Requests: requests}))
}
