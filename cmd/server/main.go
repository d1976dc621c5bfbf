package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/portfolio-api/internal/config"
	"github.com/yukikurage/portfolio-api/internal/database"
	"github.com/yukikurage/portfolio-api/internal/handlers"
	"github.com/yukikurage/portfolio-api/internal/middleware"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/services"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database and run migrations
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	authService := services.NewAuthService(accountRepo, cfg.JWTSecret)
	categoryService := services.NewCategoryService(categoryRepo)
	languageService := services.NewLanguageService(languageRepo, projectRepo)
	projectService := services.NewProjectService(projectRepo, categoryRepo, languageRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	languageHandler := handlers.NewLanguageHandler(languageService)
	projectHandler := handlers.NewProjectHandler(projectService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	requireAuth := middleware.RequireAuth(cfg.JWTSecret, accountRepo)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})

	// API routes
	api := r.Group("/api/v" + cfg.APIVersion)
	{
		categories := api.Group("/categories")
		{
			categories.GET("/get-all-categories", categoryHandler.List)
			categories.GET("/get-category-by-id/:id", requireAuth, categoryHandler.Get)
			categories.POST("/create-category", requireAuth, categoryHandler.Create)
			categories.PUT("/update-category/:id", requireAuth, categoryHandler.Update)
			categories.DELETE("/delete-category/:id", requireAuth, categoryHandler.Delete)
			categories.DELETE("/hard-delete-category/:id", requireAuth, categoryHandler.HardDelete)
		}

		languages := api.Group("/languages")
		languages.Use(requireAuth)
		{
			languages.GET("/get-all-languages", languageHandler.List)
			languages.GET("/get-language-by-id/:id", languageHandler.Get)
			languages.POST("/create-language", languageHandler.Create)
			languages.PUT("/update-language/:id", languageHandler.Update)
			languages.DELETE("/delete-language/:id", languageHandler.Delete)
			languages.DELETE("/hard-delete-language/:id", languageHandler.HardDelete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("/get-all-projects", projectHandler.List)
			projects.GET("/get-project-by-id/:id", requireAuth, projectHandler.Get)
			projects.GET("/get-project-by-name/:name", requireAuth, projectHandler.GetByName)
			projects.POST("/create-project", requireAuth, projectHandler.Create)
			projects.PUT("/update-project/:id", requireAuth, projectHandler.Update)
			projects.DELETE("/delete-project/:id", requireAuth, projectHandler.Delete)
			projects.DELETE("/hard-delete-project/:id", requireAuth, projectHandler.HardDelete)
		}

		contacts := api.Group("/contacts")
		contacts.Use(requireAuth)
		{
			contacts.GET("/get-all-contacts", contactHandler.List)
			contacts.GET("/get-contact-by-id/:id", contactHandler.Get)
			contacts.POST("/create-contact", contactHandler.Create)
			contacts.PUT("/update-contact/:id", contactHandler.Update)
			contacts.DELETE("/delete-contact/:id", contactHandler.Delete)
			contacts.DELETE("/hard-delete-contact/:id", contactHandler.HardDelete)
		}

		accounts := api.Group("/accounts")
		{
			accounts.POST("/login", authHandler.Login)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
