package main

import (
	"context"
	"log"

	"github.com/Xvidddd/AI-Travel-Planner/internal/config"
	"github.com/Xvidddd/AI-Travel-Planner/internal/database"
	"github.com/Xvidddd/AI-Travel-Planner/internal/geocode"
	"github.com/Xvidddd/AI-Travel-Planner/internal/handler"
	"github.com/Xvidddd/AI-Travel-Planner/internal/llm"
	"github.com/Xvidddd/AI-Travel-Planner/internal/repository"
	"github.com/Xvidddd/AI-Travel-Planner/internal/server"
	"github.com/Xvidddd/AI-Travel-Planner/internal/service"
)

func main() {
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Select the itinerary generator once at startup; the rest of the
	// application only sees the ItineraryGenerator interface.
	llmClient := llm.NewClient(&llm.Config{
		APIKey:   cfg.DeepseekAPIKey,
		Endpoint: cfg.DeepseekEndpoint,
		ModelID:  cfg.DeepseekModel,
		Timeout:  cfg.LLMTimeout,
	})

	var generator llm.ItineraryGenerator
	if cfg.LLMProvider == config.ProviderDeepseek {
		log.Println("Using DeepSeek chat-completion itinerary generator")
		generator = llm.NewChatCompletionGenerator(llmClient)
	} else {
		log.Println("Using mock itinerary generator")
		generator = llm.NewMockGenerator()
	}

	// Connect to PostgreSQL when configured; the service runs without it
	// but persistence operations will be rejected.
	var itineraryRepo repository.ItineraryRepository
	var expenseRepo repository.ExpenseRepository
	if cfg.PostgresURL != "" {
		log.Println("Connecting to PostgreSQL...")
		db, err := database.NewPostgresDB(context.Background(), cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		itineraryRepo = repository.NewPostgresItineraryRepository(db)
		expenseRepo = repository.NewPostgresExpenseRepository(db)
	}

	plannerService := service.NewPlannerService(generator, itineraryRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	intentParser := llm.NewIntentParser(llmClient)
	geocodeClient := geocode.NewClient(cfg.AmapWebServiceKey)

	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, server.Handlers{
		Planner: handler.NewPlannerHandler(plannerService),
		Expense: handler.NewExpenseHandler(expenseService),
		Voice:   handler.NewVoiceHandler(intentParser),
		Geocode: handler.NewGeocodeHandler(geocodeClient),
	})

	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
