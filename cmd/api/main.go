package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "cleaning_assignments/docs"
	"cleaning_assignments/internal/adapter/http/routes"
	"cleaning_assignments/internal/app"
	"cleaning_assignments/internal/infrastructure/config"
	"cleaning_assignments/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Cleaning Assignments API
// @version         1.0
// @description     Matches cleaners to quotes and tracks each offer until it is accepted, declined or expires.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger, prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	defer a.Close()

	return routes.Run(ctx, a)
}
