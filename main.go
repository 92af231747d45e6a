package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jamndev/portfolio-backend/api"
	"github.com/jamndev/portfolio-backend/config"
	"github.com/jamndev/portfolio-backend/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Error migrating database schema")
		os.Exit(1)
	}

	currentDB := database.New(db)

	if err := currentDB.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
		log.Error().Err(err).Msg("Error seeding admin account")
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server := api.NewServer(cfg, currentDB)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Error().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
