package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
	"trip-route-service/internal/adapters/cache"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/adapters/weather"
	"trip-route-service/internal/api"
	"trip-route-service/internal/config"
	"trip-route-service/internal/platform/db"
	"trip-route-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres storage, Redis cache,
// OpenWeatherMap) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	repo, closeDB, err := openRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	// Caching finished plans is sound because planning is deterministic.
	var planCache ports.PlanCache
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("redis unreachable at %s, continuing without plan cache: %v", addr, err)
		} else {
			planCache = cache.NewRedisPlanCache(client, 24*time.Hour)
			log.Printf("plan cache enabled addr=%s", addr)
		}
		cancel()
	}

	// Weather advisories are optional display metadata.
	var forecast ports.ForecastProvider
	if key := strings.TrimSpace(os.Getenv("OPENWEATHER_API_KEY")); key != "" {
		provider, err := weather.NewOWMForecastProvider(key)
		if err != nil {
			log.Fatal(err)
		}
		forecast = provider
	}

	router := api.NewRouter(repo, planCache, forecast)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository selects Postgres when DATABASE_URL is set, otherwise a
// local SQLite file initialized and seeded on startup.
func openRepository() (ports.LocationRepository, func() error, error) {
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLLocationRepository(pg), pg.Close, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")

	lite, err := openSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(lite, seedPath); err != nil {
		lite.Close()
		return nil, nil, err
	}

	return repositories.NewSqliteLocationRepository(lite), lite.Close, nil
}

func openSqlite(dbPath string) (*sql.DB, error) {
	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := lite.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return lite, nil
}

func initAndSeed(lite *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(lite); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(lite, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
