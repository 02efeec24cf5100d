package main

import (
	"log"
	"time"

	"countrydb/config"
	"countrydb/migrations"

	"github.com/joho/godotenv"
)

func main() {
	// set timezone to utc
	time.Local = time.UTC

	// load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal("Error loading configuration:", err)
	}

	// database connection
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// migrations and seeders
	if err := migrations.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	if err := migrations.Seed(db); err != nil {
		log.Fatal("Seeding failed:", err)
	}
}
