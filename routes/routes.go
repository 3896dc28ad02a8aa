package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonlitpage-api/config"
	"moonlitpage-api/controllers"
	"moonlitpage-api/middleware"
	"moonlitpage-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Services
	bookSearch := services.NewBookSearchService(cfg.OpenLibraryURL)
	feedService := services.NewFeedService(db, bookSearch)

	// Controllers
	homeController := controllers.NewHomeController()
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService, cfg.Production)
	bookController := controllers.NewBookController(bookSearch)
	feedController := controllers.NewFeedController(feedService)
	postController := controllers.NewPostController(db)
	profileController := controllers.NewProfileController(db, cfg.UploadDir)
	bookshelfController := controllers.NewBookshelfController(db)
	reviewController := controllers.NewReviewController(db, bookSearch)

	// Every route passes the identity middleware, then the login gate.
	r.Use(middleware.Identity(cfg.JWTSecret))
	r.Use(middleware.RequireLogin())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/", homeController.Index)
	r.GET("/contact", homeController.ContactPage)
	r.POST("/contact", homeController.Contact)

	r.GET("/login", authController.LoginPage)
	r.POST("/login", authController.Login)
	r.GET("/register", authController.RegisterPage)
	r.POST("/register", authController.Register)
	r.GET("/forgot", authController.ForgotPage)
	r.POST("/forgot", authController.Forgot)
	r.GET("/logout", authController.Logout)

	r.GET("/book", bookController.Browse)
	r.GET("/feed", feedController.GetFeed)
	r.GET("/reviews", reviewController.GetReviews)

	r.GET("/profile", profileController.GetProfile)
	r.POST("/profile/update", profileController.UpdateProfile)

	bookshelf := r.Group("/bookshelf")
	{
		bookshelf.POST("/add", bookshelfController.Add)
		bookshelf.POST("/update", bookshelfController.UpdateStatus)
		bookshelf.POST("/delete/:shelfId", bookshelfController.Delete)
	}

	r.POST("/review/post", reviewController.PostReview)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(120, 20))
	{
		api.POST("/post/toggle-bookmark", postController.ToggleBookmark)
		api.POST("/post/comment", postController.AddComment)
		api.POST("/post/like", postController.Like)
		api.POST("/post/unlike", postController.Unlike)
	}

	// Uploaded profile pictures are served from the public directory.
	r.Static("/uploads", cfg.UploadDir)
}
