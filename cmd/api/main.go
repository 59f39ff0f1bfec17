package main

import (
	"os"

	"github.com/karthikv/parentportal/internal/pkg/logger"
	"github.com/karthikv/parentportal/internal/server"
)

// @title Parent Portal API
// @version 1.0
// @description Backend for the college parent and student dashboards: attendance, marks, fees, timetable and parent messaging.

// @contact.name API Support
// @contact.email support@parentportal.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

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
