package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"finlit-agent/internal/config"
	"finlit-agent/internal/db"
	"finlit-agent/internal/event"
	"finlit-agent/internal/handlers"
	"finlit-agent/internal/llm"
	"finlit-agent/internal/repository"
	"finlit-agent/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	mongoClient, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()
	database := mongoClient.Database(cfg.MongoDatabase)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" {
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	knowledgeRepo := repository.NewKnowledgeRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	userRepo := repository.NewUserRepository(database)

	// The service layer takes interfaces; a nil *EventPublisher must stay a
	// nil interface so publishing is skipped when the broker is absent.
	var events service.EventSink
	if publisher != nil {
		events = publisher
	}

	quizService := service.NewQuizService(questionRepo, progressRepo, llmClient, events)
	chatService := service.NewChatService(knowledgeRepo, llmClient, llmClient.Model())
	progressService := service.NewProgressService(progressRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, events)

	quizHandler := handlers.NewQuizHandler(quizService)
	chatHandler := handlers.NewChatHandler(chatService)
	progressHandler := handlers.NewProgressHandler(progressService)
	authHandler := handlers.NewAuthHandler(authService)
	contentHandler := handlers.NewContentHandler(knowledgeRepo, questionRepo)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Financial Literacy API is running"})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now()})
	})

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/questions", quizHandler.List)
		api.POST("/generate-questions", quizHandler.Generate)
		api.POST("/ask", chatHandler.Ask)

		api.POST("/seed-content", contentHandler.SeedContent)
		api.POST("/seed-questions", contentHandler.SeedQuestions)
		api.GET("/check-content", contentHandler.CheckContent)

		protected := api.Group("")
		protected.Use(handlers.AuthRequired(cfg.JWTSecret))
		{
			protected.POST("/submit", quizHandler.Submit)
			protected.GET("/progress", progressHandler.History)
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
