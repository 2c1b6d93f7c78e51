package main

import (
	"log"
	"os"
	"strings"

	"shipment-service/internal/adapters/repositories"
	"shipment-service/internal/config"
	"shipment-service/internal/platform/db"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(database); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/catalog.json")
	log.Println("Seeding catalog data...")
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
