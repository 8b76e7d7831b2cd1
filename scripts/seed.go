// Manual database seeding script.
//
// Seeding runs automatically on startup when the course and reward tables
// are empty. This script is for running it by hand, for example against a
// freshly provisioned database before the first deploy.
//
// Usage: go run scripts/seed.go

package main

import (
	"log"
	"os"
	"peerlearn_backend/internal/config"
	"peerlearn_backend/pkg/database"
	"peerlearn_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
