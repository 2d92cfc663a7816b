package main

import (
	"os"

	"github.com/mkarvonen/placementtrack/internal/pkg/logger"
	"github.com/mkarvonen/placementtrack/internal/server"
)

// @title PlacementTrack API
// @version 1.0
// @description Backend for tracking student work placements: students, host companies and placement periods.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
