package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"parkwash/internal/app"
	"parkwash/internal/config"
	"parkwash/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := app.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	services, err := app.NewServices(cfg, db)
	if err != nil {
		log.Fatal(err)
	}
	router := app.NewRouter(cfg, services)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http server listening addr=%s env=%s", cfg.HTTPAddr, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http server shutdown error=%q", err.Error())
	}
	log.Println("http server stopped")
}
