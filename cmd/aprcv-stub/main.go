package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/RandomSci/CapstoneProject/internal/stubserver"
	"github.com/RandomSci/CapstoneProject/pkg/config"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.LogLevel)

	port := os.Getenv("APRCV_STUB_PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      stubserver.New(appLogger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // video submissions stream slowly
	}

	go func() {
		appLogger.WithComponent("stub").WithField("port", port).Info("Starting APR-CV stub server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithComponent("stub").WithError(err).Error("Server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.WithComponent("stub").Info("Shutting down stub server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithComponent("stub").WithError(err).Error("Graceful shutdown failed")
		os.Exit(1)
	}
}
