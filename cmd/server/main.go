package main

import (
	"net/http"

	"github.com/joho/godotenv"

	"github.com/chlnedo/calorie-tracker/config"
	"github.com/chlnedo/calorie-tracker/database"
	"github.com/chlnedo/calorie-tracker/jobs"
	"github.com/chlnedo/calorie-tracker/logger"
	"github.com/chlnedo/calorie-tracker/routes"
)

func main() {
	// Initialize Structured Logger
	logger.Init()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	// Initialize DB
	database.InitDB()

	// Start daily log rollover worker
	jobs.GetWorker()

	// Setup Router
	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", "error", err)
	}
}
