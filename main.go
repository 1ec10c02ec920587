// @title DSA Progress Tracker API
// @version 1.0
// @description Local-first practice progress tracker with best-effort
// @description per-user remote sync.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"github.com/AdityaANS/dsa-progress-tracker/internal/app"
	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
