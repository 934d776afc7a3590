package main

import (
	"flag"
	"log"

	"menu-manager/internal/app"
	"menu-manager/internal/config"
	"menu-manager/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML settings file (default "+config.DefaultPath+" when present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	appLogger := logger.New(cfg.Level(), cfg.JSONLogs)
	appLogger.Info("main", "starting", map[string]interface{}{
		"version":   app.AppVersion,
		"log_level": cfg.LogLevel,
	})

	application, err := app.NewApplication(nil, cfg, appLogger)
	if err != nil {
		appLogger.Error("main", err, nil)
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	appLogger.Info("main", "terminated", nil)
}
