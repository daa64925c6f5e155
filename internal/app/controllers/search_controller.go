package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/app/services"
	"github.com/lucasmb/orkinet/internal/middleware"
	"github.com/lucasmb/orkinet/internal/pkg/helpers"
)

// SearchController handles name lookup endpoints
type SearchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService services.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// SearchUsers handles profile name search
// @Summary Search users
// @Description Finds profiles by display name prefix, falling back to a bounded substring scan
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param limit query int false "Maximum results" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.SearchUsersResponse} "Search results"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search/users [get]
func (c *SearchController) SearchUsers(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, 0)

	results, err := c.searchService.SearchUsers(ctx, ctx.Query("q"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results))
}

// SearchCommunities handles community name search
// @Summary Search communities
// @Description Finds communities by name prefix
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Param limit query int false "Maximum results" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.SearchCommunitiesResponse} "Search results"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /search/communities [get]
func (c *SearchController) SearchCommunities(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, 0)

	results, err := c.searchService.SearchCommunities(ctx, ctx.Query("q"), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results))
}
