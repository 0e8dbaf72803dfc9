package main

import (
	"database/sql"
	"log"
	"trip-route-service/internal/adapters/repositories"
	"trip-route-service/internal/config"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// dbtool initializes the local SQLite schema and loads the seed file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")

	lite, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer lite.Close()

	if err := lite.Ping(); err != nil {
		log.Fatal(err)
	}

	seedPath := config.Get("SEED_PATH", "data/seeds/locations.json")
	initAndSeed(lite, seedPath)
}

func initAndSeed(lite *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(lite); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(lite, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
