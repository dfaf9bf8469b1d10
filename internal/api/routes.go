package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/maroofsyyed/dominion1/internal/realtime"
	"github.com/maroofsyyed/dominion1/internal/service"
)

// Services bundles what the handlers need.
type Services struct {
	Auth         service.AuthService
	Exercise     service.ExerciseService
	Mobility     service.MobilityService
	Progress     service.ProgressService
	Community    service.CommunityService
	Social       service.SocialService
	User         service.UserService
	Gamification service.GamificationService
	Shop         service.ShopService
	Hub          *realtime.Hub
}

func SetupRoutes(router *gin.Engine, allowedOrigins []string, svc Services) {
	router.Use(corsMiddleware(allowedOrigins))

	authHandler := NewAuthHandler(svc.Auth)
	exerciseHandler := NewExerciseHandler(svc.Exercise, svc.Mobility)
	progressHandler := NewProgressHandler(svc.Progress, svc.Mobility)
	communityHandler := NewCommunityHandler(svc.Community, svc.Hub)
	socialHandler := NewSocialHandler(svc.Social, svc.User)
	gamificationHandler := NewGamificationHandler(svc.Gamification, svc.Shop)

	authMiddleware := AuthMiddleware(svc.Auth)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/ws/chat/:room_id", communityHandler.ChatSocket)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMiddleware, authHandler.Me)
		}

		api.GET("/exercises", exerciseHandler.ListExercises)
		api.GET("/exercises/pillars", exerciseHandler.ListPillars)
		api.GET("/exercises/:id", exerciseHandler.GetExercise)
		api.GET("/mobility", exerciseHandler.ListMobility)
		api.GET("/mobility/:id", exerciseHandler.GetMobility)

		api.GET("/products", gamificationHandler.ListProducts)
		api.GET("/products/:id", gamificationHandler.GetProduct)
		api.GET("/leaderboard", gamificationHandler.Leaderboard)
		api.GET("/challenges", gamificationHandler.ListChallenges)
		api.GET("/achievements", gamificationHandler.ListAchievements)
		api.GET("/users/:id/achievements", gamificationHandler.UserAchievements)

		api.GET("/communities", communityHandler.ListCommunities)
		api.GET("/communities/:id/messages", communityHandler.CommunityMessages)
		api.GET("/chat/channels", communityHandler.ListChannels)
		api.GET("/chat/channels/:id/messages", communityHandler.ChannelMessages)
	}

	protected := api.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/progress", progressHandler.LogProgress)
		protected.GET("/progress", progressHandler.ListProgress)
		protected.GET("/progress/:exercise_id", progressHandler.ListExerciseProgress)
		protected.GET("/analytics/progress", progressHandler.Analytics)

		protected.POST("/workouts", progressHandler.CreateWorkout)
		protected.GET("/workouts", progressHandler.ListWorkouts)

		mobilityGroup := protected.Group("/mobility")
		{
			mobilityGroup.POST("/assessments", progressHandler.CreateAssessment)
			mobilityGroup.GET("/assessments", progressHandler.ListAssessments)
			mobilityGroup.GET("/assessments/latest", progressHandler.LatestAssessment)
			mobilityGroup.GET("/recommendations", progressHandler.Recommendations)
		}

		protected.POST("/communities/:id/join", communityHandler.JoinCommunity)
		protected.POST("/chat/channels/:id/join", communityHandler.JoinChannel)
		protected.POST("/challenges/:id/join", gamificationHandler.JoinChallenge)

		usersGroup := protected.Group("/users")
		{
			usersGroup.POST("/follow/:id", socialHandler.Follow)
			usersGroup.DELETE("/unfollow/:id", socialHandler.Unfollow)
			usersGroup.GET("/search", socialHandler.Search)
			usersGroup.GET("/:id/profile", socialHandler.Profile)
			usersGroup.GET("/:id/followers", socialHandler.Followers)
			usersGroup.GET("/:id/following", socialHandler.Following)
			usersGroup.GET("/:id/photo", socialHandler.ProfilePhotoURL)
		}

		protected.POST("/upload/profile-photo", socialHandler.UploadProfilePhoto)
	}
}

// corsMiddleware allows the configured origins. A "*" entry allows any origin
// without credentials.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range allowedOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cors.New(cfg)
	}
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
