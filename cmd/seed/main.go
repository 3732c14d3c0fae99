// Command seed replaces the configured store's contents with demo data.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"octofit-backend/internal/config"
	"octofit-backend/internal/seed"
	"octofit-backend/internal/service"
	"octofit-backend/internal/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	seedFlag := flag.Int64("seed", 0, "random seed for activity generation (0 uses SEED_RANDOM_SEED, then a random seed)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stdout)

	if cfg.UsesMemoryStore() {
		logrus.Warn("STORE_DRIVER=memory: seeded data is discarded when this command exits")
	}

	st, closeStore, err := store.Open(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize store:", err)
	}
	defer closeStore()

	seedValue := *seedFlag
	if seedValue == 0 {
		seedValue = cfg.SeedRandomSeed
	}

	lb := service.NewLeaderboardService(st, service.NewValidator(), nil)
	summary, err := seed.NewGenerator(st, lb, seed.NewRand(seedValue)).Run(context.Background())
	if err != nil {
		logrus.Fatal("Failed to populate database:", err)
	}

	logrus.Info("Successfully populated the octofit_db database")
	logrus.Infof("Created %d users", summary.Users)
	logrus.Infof("Created %d teams", summary.Teams)
	logrus.Infof("Created %d activities", summary.Activities)
	logrus.Infof("Created %d leaderboard entries", summary.LeaderboardEntries)
	logrus.Infof("Created %d workout suggestions", summary.Workouts)
}
