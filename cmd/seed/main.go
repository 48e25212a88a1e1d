// Command main runs the database seeder for Motoisle.
package main

import (
	"flag"
	"log"

	"motoisle/internal/config"
	"motoisle/internal/database"
	"motoisle/internal/seed"
)

func main() {
	numMotorcycles := flag.Int("motorcycles", 25, "Number of generated listings on top of the fixture catalog")
	numReviews := flag.Int("reviews", 100, "Number of generated reviews")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: fixtures + %d motorcycles, %d reviews, clean=%v\n",
		*numMotorcycles, *numReviews, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumMotorcycles: *numMotorcycles,
		NumReviews:     *numReviews,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
