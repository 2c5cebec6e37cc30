package main

import (
	"context"
	"os"
	"time"

	"github.com/akshat/marksheet/internal/bootstrap"
	"github.com/akshat/marksheet/internal/db"
	"github.com/akshat/marksheet/internal/pkg/logger"
	"github.com/akshat/marksheet/internal/seed"
)

// Seeds the default admin account. Run once against a fresh database;
// repeated runs are no-ops.
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		os.Exit(1)
	}
	defer database.Close(context.Background())

	queryTimeout, err := time.ParseDuration(cfg.Mongo.QueryTimeout)
	if err != nil {
		queryTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if err := seed.CreateAdminUser(ctx, database.Database, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed admin user")
		os.Exit(1)
	}
}
