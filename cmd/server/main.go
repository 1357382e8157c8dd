package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sujalbistaa/postpilot/internal/config"
	"github.com/sujalbistaa/postpilot/internal/db"
	routes "github.com/sujalbistaa/postpilot/internal/http"
	"github.com/sujalbistaa/postpilot/internal/store"
)

func main() {
	log.SetPrefix("[POSTPILOT] ")

	// A .env file is optional; in production the variables are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Init(db.Options{LogSQL: cfg.LogSQL})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	posts := store.New(database)

	if cfg.SeedSamplePosts {
		seeded, err := posts.Seed(ctx, store.SamplePosts())
		if err != nil {
			log.Fatalf("Failed to seed sample posts: %v", err)
		}
		log.Printf("Seeded %d sample posts.", len(seeded))
	}

	router := gin.New()
	env, err := routes.SetupRoutes(router, posts, cfg)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}
	go env.RunJanitor(ctx, cfg.SessionIdleTimeout)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
