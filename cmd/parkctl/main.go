package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"parkwash/internal/app"
	"parkwash/internal/cli"
	"parkwash/internal/config"
	"parkwash/internal/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	services, err := app.NewServices(cfg, db)
	if err != nil {
		return err
	}

	root := cli.NewRootCmd(&cli.App{
		Migrate:   func() error { return app.Migrate(db) },
		Employees: services.Employees,
		Rates:     services.Rates,
	})
	return root.ExecuteContext(context.Background())
}
