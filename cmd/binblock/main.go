package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"binblock/internal/app"
	"binblock/internal/config"
	"binblock/internal/logger"
)

// fatalDiagnostic is the fixed message printed when startup or the run
// loop fails; the process exits non-zero.
const fatalDiagnostic = "error while running binblock application"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%s: %v", fatalDiagnostic, err)
	}

	appLogger := buildLogger(cfg)

	application, err := app.New(cfg, appLogger)
	if err != nil {
		log.Fatalf("%s: %v", fatalDiagnostic, err)
	}

	setupSignalHandling(application, appLogger)

	if err := application.Run(); err != nil {
		log.Fatalf("%s: %v", fatalDiagnostic, err)
	}

	appLogger.Info("Main", "application terminated", nil)
}

func buildLogger(cfg *config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format == "json" {
		return logger.NewJSONLogger(os.Stdout, level)
	}
	return logger.NewConsoleLogger(level)
}

func setupSignalHandling(application *app.Application, appLogger logger.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		appLogger.Info("Main", "system signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		application.Shutdown()
		os.Exit(0)
	}()
}
