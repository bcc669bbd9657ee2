// Command seed populates the database with social networks and demo data.
package main

import (
	"context"
	"flag"
	"log"

	"autoscheduler/internal/bootstrap"
	"autoscheduler/internal/config"
	"autoscheduler/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 5, "Number of demo users to create")
	categories := flag.Int("categories", 3, "Categories per user")
	publications := flag.Int("publications", 10, "Publications per user")
	events := flag.Int("events", 4, "Recurring publish events per user")
	shouldClean := flag.Bool("clean", false, "Delete existing users and their data before seeding")
	networksOnly := flag.Bool("networks-only", false, "Only ensure the configured social networks exist")
	fakerSeed := flag.Int64("seed", 0, "Random seed for reproducible demo data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.IsProduction() && !*networksOnly {
		log.Fatal("Refusing to seed demo data in production; use -networks-only")
	}

	ctx := context.Background()
	db, redisClient, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SeedNetworks: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}
	log.Printf("Social networks ensured: %v", cfg.SeedNetworkNames())

	if *networksOnly {
		return
	}

	res, err := seed.Demo(ctx, db, seed.Options{
		NumUsers:            *numUsers,
		CategoriesPerUser:   *categories,
		PublicationsPerUser: *publications,
		EventsPerUser:       *events,
		ShouldClean:         *shouldClean,
		Seed:                *fakerSeed,
	})
	if err != nil {
		log.Fatalf("Demo seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d categories, %d publications, %d events",
		len(res.Users), res.Categories, res.Publications, res.Events)
	log.Printf("All demo users have the password: %s", seed.DemoPassword)
	log.Printf("Admin user: %s", res.Users[0].Email)
}
