package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"careerparty/internal/common/clock"
	"careerparty/internal/common/uuid"
	"careerparty/internal/dice"
	"careerparty/internal/handlers/httpapi"
	"careerparty/internal/handlers/ws"
	"careerparty/internal/repositories/catalog"
	gameService "careerparty/internal/services/game"
	"careerparty/internal/services/registry"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize catalog repository and seed starter cards on first run
	catalogRepo, err := catalog.NewRedis(&catalog.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create catalog repository: %v", err)
	}

	if err := catalog.Seed(ctx, catalogRepo); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Initialize connection registry
	connRegistry := registry.New()

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		CatalogRepo:       catalogRepo,
		Registry:          connRegistry,
		DiceRoller:        dice.New(&dice.Config{}),
		Clock:             &clock.DefaultClock{},
		IDGenerator:       uuid.New(),
		DefaultMaxPlayers: getEnvInt("MAX_PLAYERS", 4),
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// Initialize handlers
	wsHandler, err := ws.New(&ws.Config{
		GameService: gameSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create WebSocket handler: %v", err)
	}

	apiHandler, err := httpapi.New(&httpapi.Config{
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP API handler: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	apiHandler.Register(mux)

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		log.Printf("Server listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %d", key, value, defaultValue)
		return defaultValue
	}

	return parsed
}
