package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"menu-manager/internal/config"
	"menu-manager/internal/controllers"
	"menu-manager/internal/logger"
	"menu-manager/internal/models"
	"menu-manager/internal/navigation"
	"menu-manager/internal/shutdown"
	"menu-manager/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML settings file (default "+config.DefaultPath+" when present)")
	logPath := flag.String("log", "menu-tui.log", "file receiving log output while the terminal is in use")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	logFile, err := tea.LogToFile(*logPath, "menu-tui")
	if err != nil {
		log.Fatalf("Opening log file failed: %v", err)
	}
	defer logFile.Close()

	appLogger := logger.NewFileLogger(cfg.Level(), logFile)

	scheduler := tui.NewScheduler()
	mainController := controllers.NewMainController(
		models.NewMenuStore(),
		navigation.NewRouter(appLogger),
		scheduler,
		controllers.Settings{
			Currency:           cfg.Currency,
			AckDelay:           cfg.AckDelay,
			RequireDescription: cfg.RequireDescription,
			DefaultFilter:      cfg.DefaultFilter,
		},
		appLogger,
	)

	program := tea.NewProgram(tui.New(mainController, scheduler), tea.WithAltScreen())

	manager := shutdown.NewManager(appLogger)
	manager.Register("controllers", mainController)
	manager.Register("scheduler", scheduler)
	manager.Listen(program.Quit)

	appLogger.Info("main", "terminal UI starting", nil)
	_, runErr := program.Run()
	manager.Shutdown()

	if runErr != nil {
		appLogger.Error("main", runErr, nil)
		fmt.Fprintf(os.Stderr, "menu-tui: %v\n", runErr)
		logFile.Close()
		os.Exit(1)
	}
}
