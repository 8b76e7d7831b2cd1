package app

import (
	"peerlearn_backend/docs"
	"peerlearn_backend/internal/middleware"
	"peerlearn_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/courses", c.course.ListCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/leaderboard", c.leaderboard.GetLeaderboard)
		public.GET("/rewards", c.reward.ListRewards)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config), middleware.ActivityMiddleware(s.user))
	{
		authGroup.GET("/users/me", c.user.GetMe)
		authGroup.POST("/courses/:id/enroll", c.course.Enroll)
		authGroup.GET("/enrollments", c.course.ListEnrollments)
		authGroup.POST("/quizzes/submit", c.course.SubmitQuiz)
		authGroup.GET("/quizzes/attempts", c.course.ListQuizAttempts)

		authGroup.POST("/skills/add", c.p2p.AddSkill)
		authGroup.GET("/p2p/mentors", c.p2p.ListMentors)
		authGroup.POST("/p2p/sessions/book", c.p2p.BookSession)
		authGroup.GET("/p2p/sessions/my", c.p2p.MySessions)
		authGroup.POST("/p2p/sessions/rate", c.p2p.RateSession)

		authGroup.POST("/rewards/redeem", c.reward.Redeem)
		authGroup.GET("/rewards/my", c.reward.MyRedemptions)

		authGroup.GET("/ai/recommendations", c.recommendation.GetRecommendations)
	}
}
