package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/n1207n/fullstack-posts/config"
	"github.com/n1207n/fullstack-posts/internal/database"
	"github.com/n1207n/fullstack-posts/internal/handler"
	natsClient "github.com/n1207n/fullstack-posts/internal/nats"
	"github.com/n1207n/fullstack-posts/internal/publisher"
	"github.com/n1207n/fullstack-posts/internal/repository"
	approuter "github.com/n1207n/fullstack-posts/internal/router"
	"github.com/n1207n/fullstack-posts/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded successfully. App Env: %s, Server: %d", cfg.AppEnv, cfg.AppPort)

	dbPool, err := database.NewPool(context.Background(), database.PoolConfig{
		URL:             cfg.DbURL,
		MaxConns:        cfg.DbMaxConns,
		MinConns:        cfg.DbMinConns,
		MaxConnLifetime: cfg.DbMaxConnLifetime,
		MaxConnIdleTime: cfg.DbMaxConnIdleTime,
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer dbPool.Close()
	log.Println("Database connection pool established.")

	var eventPublisher publisher.EventPublisher = publisher.NoopPublisher{}
	if cfg.NatsURL != "" {
		nc, err := natsClient.NewClient(natsClient.Config{
			URL:           cfg.NatsURL,
			MaxReconnects: 10,
			ReconnectWait: 2 * time.Second,
			ClientID:      cfg.NatsClientID,
		})
		if err != nil {
			log.Fatalf("Failed to initialize NATS client: %v", err)
		}
		defer nc.Close()
		eventPublisher = publisher.NewEventPublisher(nc)
		log.Println("NATS client initialized.")
	} else {
		log.Println("NATS_URL not set, post events are disabled.")
	}

	postRepo := repository.NewDBPostRepository(dbPool)
	log.Println("Post repository initialized.")

	postService := service.NewPostService(postRepo, eventPublisher)
	log.Println("Post service initialized.")

	postHandler := handler.NewPostHandler(postService)
	log.Println("Post handler initialized.")

	router := approuter.New(approuter.Options{
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.CorsAllowedOrigins,
		DB:             dbPool,
	}, postHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: router,
	}

	go func() {
		log.Printf("Server listening on %d", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
