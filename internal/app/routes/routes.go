package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lucasmb/orkinet/internal/app/controllers"
	"github.com/lucasmb/orkinet/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	friendController *controllers.FriendController,
	communityController *controllers.CommunityController,
	searchController *controllers.SearchController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profiles := authenticated.Group("/profiles")
		{
			profiles.GET("/me", profileController.GetOwnProfile)
			profiles.GET("/:id", profileController.GetProfile)
			profiles.PUT("/:id", profileController.UpdateProfile)
		}

		friends := authenticated.Group("/friends")
		{
			friends.GET("", friendController.ListFriends)
			friends.DELETE("/:id", friendController.RemoveFriend)
			friends.POST("/requests", friendController.SendRequest)
			friends.GET("/requests/incoming", friendController.ListIncomingRequests)
			friends.GET("/requests/outgoing", friendController.ListOutgoingRequests)
			friends.POST("/requests/accept", friendController.AcceptRequest)
			friends.POST("/requests/reject", friendController.RejectRequest)
		}

		communities := authenticated.Group("/communities")
		{
			communities.GET("", communityController.ListCommunities)
			communities.POST("", communityController.CreateCommunity)
			communities.GET("/mine", communityController.ListOwnCommunities)
			communities.GET("/categories", communityController.ListCategories)
			communities.GET("/:id", communityController.GetCommunity)
			communities.PUT("/:id", communityController.UpdateCommunity)
			communities.DELETE("/:id", communityController.DeleteCommunity)
			communities.POST("/:id/join", communityController.JoinCommunity)
			communities.POST("/:id/leave", communityController.LeaveCommunity)
			communities.GET("/:id/members", communityController.ListMembers)
			communities.DELETE("/:id/members/:userId", communityController.RemoveMember)
			communities.POST("/:id/moderators", communityController.PromoteModerator)
			communities.DELETE("/:id/moderators/:userId", communityController.DemoteModerator)
		}

		search := authenticated.Group("/search")
		{
			search.GET("/users", searchController.SearchUsers)
			search.GET("/communities", searchController.SearchCommunities)
		}
	}
}
