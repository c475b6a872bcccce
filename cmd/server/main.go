package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/opsboard/intranet-api/internal/config"
	"github.com/opsboard/intranet-api/internal/constants"
	"github.com/opsboard/intranet-api/internal/database"
	apierrors "github.com/opsboard/intranet-api/internal/errors"
	"github.com/opsboard/intranet-api/internal/handlers"
	"github.com/opsboard/intranet-api/internal/middleware"
	"github.com/opsboard/intranet-api/internal/repository"
	"github.com/opsboard/intranet-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Session state lives entirely in an encrypted client-held cookie; there
	// is no server-side session table.
	store := cookie.NewStore([]byte(cfg.SessionSecret), []byte(cfg.SessionEncryptKey))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	credRepo := repository.NewCredentialRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	assignmentService := services.NewAssignmentService(assignmentRepo)
	credService := services.NewCredentialService(credRepo)
	chatService := services.NewChatService(messageRepo)
	generalService := services.NewGeneralService(userRepo, postRepo, assignmentRepo, messageRepo)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	credHandler := handlers.NewCredentialHandler(credService)
	chatHandler := handlers.NewChatHandler(chatService)
	generalHandler := handlers.NewGeneralHandler(generalService)

	// Anything that does not match a route (including a wrong method on a
	// known path) gets the plain-text 404 the clients expect.
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, apierrors.TextInvalidAPICall)
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Intranet API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// User routes (register/login are public and create the session)
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)
			user.POST("/logout", userHandler.Logout)
			user.GET("", middleware.RequireAuth(), userHandler.ListUsers)
		}

		// General routes (protected)
		general := api.Group("/general")
		general.Use(middleware.RequireAuth())
		{
			general.GET("/overview", generalHandler.Overview)
		}

		// Operation post routes (protected)
		post := api.Group("/post")
		post.Use(middleware.RequireAuth())
		{
			post.GET("", postHandler.ListPosts)
			post.POST("", postHandler.CreatePost)
		}

		// Assignment routes (protected)
		assignment := api.Group("/assignment")
		assignment.Use(middleware.RequireAuth())
		{
			assignment.GET("", assignmentHandler.ListAssignments)
			assignment.POST("", assignmentHandler.CreateAssignment)
			assignment.PATCH("", assignmentHandler.PatchAssignment)
			assignment.DELETE("/:id", assignmentHandler.DeleteAssignment)
		}

		// Credential vault routes (protected)
		cred := api.Group("/cred")
		cred.Use(middleware.RequireAuth())
		{
			cred.GET("", credHandler.ListCredentials)
			cred.POST("", credHandler.CreateCredential)
			cred.DELETE("", credHandler.DeleteCredentials)
		}

		// Chat routes (protected)
		chat := api.Group("/chat")
		chat.Use(middleware.RequireAuth())
		{
			chat.POST("/postMessage", chatHandler.PostMessage)
			chat.GET("/message", chatHandler.ListMessages)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
