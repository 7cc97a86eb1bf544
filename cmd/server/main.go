package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code_mentor/internal/api"
	"code_mentor/internal/app/service"
	"code_mentor/internal/common/security"
	"code_mentor/internal/domain/repository"
	"code_mentor/internal/platform/cache"
	"code_mentor/internal/platform/config"
	"code_mentor/internal/platform/database"
	"code_mentor/internal/platform/leetcode"
	"code_mentor/internal/platform/llm"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis (fetched-problem cache)
	cache.ConnectRedis()
	defer cache.CloseRedis()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	submissionRepo := repository.NewPgSubmissionRepository(database.DB)

	// 6. Initialize outbound clients
	provider := llm.NewOpenAIClient(llm.OpenAIOptions{
		APIKey:      config.AppConfig.OpenAIAPIKey,
		BaseURL:     config.AppConfig.OpenAIBaseURL,
		Model:       config.AppConfig.OpenAIModel,
		Temperature: config.AppConfig.OpenAITemperature,
		MaxTokens:   config.AppConfig.OpenAIMaxTokens,
	})
	problemSource := leetcode.NewClient(config.AppConfig.LeetCodeEndpoint)

	// 7. Initialize Services
	authService := service.NewAuthService(userRepo)
	problemService := service.NewProblemService(problemSource, cache.RDB, config.AppConfig.ProblemCacheTTL)
	analysisService := service.NewAnalysisService(userRepo, submissionRepo, provider, config.AppConfig.RecommendationWindow)

	// 8. Initialize Router & HTTP Server
	router := api.NewRouter(authService, problemService, analysisService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // completions can take a while
		IdleTimeout:  120 * time.Second,
	}

	// 9. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
