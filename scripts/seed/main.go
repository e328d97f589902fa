// Script to seed a local database with sample users, nights and readings.
// Usage: go run ./scripts/seed
package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/ring-analytics/internal/config"
	"github.com/blaisecz/ring-analytics/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
