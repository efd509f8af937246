package routes

import (
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/handler"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	trackingHandler *handler.TrackingHandler,
	authHandler *handler.AuthHandler,
	campaignHandler *handler.CampaignHandler,
	advertiserHandler *handler.AdvertiserHandler,
	creatorHandler *handler.CreatorHandler,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
) {
	// Tracking redirect lives outside /api/v1 and outside the rate limiter:
	// every hit must produce a click row.
	router.GET("/cl/:campaign_id/:creator_id", trackingHandler.Redirect)

	api := router.Group("/api/v1")
	if redisClient != nil {
		api.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Authentication (no auth required)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)
	auth.POST("/logout", authHandler.Logout)

	// Current user
	users := api.Group("/users", middleware.JWTAuth(jwtManager))
	users.GET("/me", authHandler.GetMe)
	users.PATCH("/me", authHandler.UpdateMe)

	// Public catalog. Optional auth: anonymous callers get masked rewards.
	api.GET("/categories", campaignHandler.ListCategories)
	campaigns := api.Group("/campaigns", middleware.OptionalJWTAuth(jwtManager))
	campaigns.GET("", campaignHandler.ListCampaigns)
	campaigns.GET("/:id", campaignHandler.GetCampaign)

	// Advertiser console
	advertiser := api.Group("/advertiser",
		middleware.JWTAuth(jwtManager),
		middleware.RequireRole(domain.RoleAdvertiser))
	{
		advertiser.POST("/campaigns", advertiserHandler.CreateCampaign)
		advertiser.GET("/campaigns", advertiserHandler.ListMyCampaigns)
		advertiser.GET("/campaigns/:id", advertiserHandler.GetMyCampaign)
		advertiser.PATCH("/campaigns/:id", advertiserHandler.UpdateCampaign)
		advertiser.GET("/campaigns/:id/stats", advertiserHandler.GetCampaignStats)
		advertiser.GET("/campaigns/:id/creators", advertiserHandler.GetCampaignCreators)
		advertiser.GET("/dashboard/stats", advertiserHandler.GetDashboardStats)
		advertiser.GET("/applications/pending", advertiserHandler.ListPendingApplications)
		advertiser.PATCH("/applications/:id", advertiserHandler.DecideApplication)
	}

	// Creator console
	creator := api.Group("/creator",
		middleware.JWTAuth(jwtManager),
		middleware.RequireRole(domain.RoleCreator))
	{
		creator.POST("/campaigns/:id/apply", creatorHandler.Apply)
		creator.GET("/campaigns", creatorHandler.ListMyCampaigns)
		creator.GET("/shop", creatorHandler.ListShopItems)
		creator.POST("/shop", creatorHandler.AddShopItem)
		creator.DELETE("/shop/:id", creatorHandler.DeleteShopItem)
	}
}
