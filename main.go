package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"bantora-api/ai"
	"bantora-api/config"
	"bantora-api/handlers"
	"bantora-api/helper"
	"bantora-api/job"
	"bantora-api/middleware"
	"bantora-api/repositories"
	"bantora-api/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	// Initialize database
	db := config.InitDB()

	// Request validation with translated messages
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		log.Fatal("Failed to register validator translations:", err)
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: translator}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	countryRepo := repositories.NewCountryRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	hashtagRepo := repositories.NewHashtagRepository(db)
	ideaRepo := repositories.NewIdeaRepository(db)
	pollRepo := repositories.NewPollRepository(db)
	voteRepo := repositories.NewVoteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, countryRepo)
	ideaService := services.NewIdeaService(db, ideaRepo, hashtagRepo, categoryRepo)
	hashtagService := services.NewHashtagService(hashtagRepo)
	pollService := services.NewPollService(pollRepo)
	voteService := services.NewVoteService(db, pollRepo, voteRepo)
	geminiClient := ai.NewClient(cfg.Ai, logger)
	aiService := services.NewAiService(db, hashtagRepo, ideaRepo, pollRepo, geminiClient, cfg.PollGeneration, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.Helper = httpHelper
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	ideaHandler.Helper = httpHelper
	pollHandler := handlers.NewPollHandler(pollService, voteService)
	pollHandler.Helper = httpHelper
	hashtagHandler := handlers.NewHashtagHandler(hashtagService)
	hashtagHandler.Helper = httpHelper
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, countryRepo)
	pipelineHandler := handlers.NewPipelineHandler(aiService)
	pipelineHandler.Helper = httpHelper

	// Background idea processing
	processingJob := job.NewIdeaProcessingJob(aiService, cfg.PollGeneration.ProcessInterval, logger)
	processingJob.Start(context.Background())

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public lookup tables
		v1.GET("/categories", categoryHandler.GetCategories)
		v1.GET("/countries", categoryHandler.GetCountries)
		v1.GET("/hashtags/trending", hashtagHandler.GetTrendingHashtags)

		// Public idea browsing
		v1.GET("/ideas", ideaHandler.GetIdeas)
		v1.GET("/ideas/:id", ideaHandler.GetIdea)
		v1.POST("/ideas/:id/upvote", ideaHandler.UpvoteIdea)

		// Polls: browsing is public, voting accepts an optional token
		polls := v1.Group("/polls")
		{
			polls.GET("", pollHandler.GetPolls)
			polls.GET("/popular", pollHandler.GetPopularPolls)
			polls.GET("/:id", pollHandler.GetPoll)
			polls.GET("/:id/source-ideas", pollHandler.GetPollSourceIdeas)
			polls.POST("/:id/vote", middleware.OptionalAuthMiddleware(), pollHandler.SubmitVote)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Idea submission
			protected.POST("/ideas", ideaHandler.CreateIdea)

			// Manual pipeline trigger
			protected.POST("/admin/pipeline/run", pipelineHandler.RunPipeline)
		}
	}

	// Start server
	port := cfg.Port

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
