package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rashed/campschool/internal/pkg/logger"
	"github.com/rashed/campschool/internal/server"
)

// @title campSchool API
// @version 1.0
// @description API for the campSchool summer camp enrollment platform

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A .env file is optional; deployments may rely on real env vars.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
