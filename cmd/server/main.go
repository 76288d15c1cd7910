package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VitorVA6/fullstack-part4/internal/api/controller"
	"github.com/VitorVA6/fullstack-part4/internal/api/repository"
	"github.com/VitorVA6/fullstack-part4/internal/api/service"
	"github.com/VitorVA6/fullstack-part4/internal/auth"
	"github.com/VitorVA6/fullstack-part4/internal/config"
	"github.com/VitorVA6/fullstack-part4/internal/db"
	"github.com/VitorVA6/fullstack-part4/internal/logger"
	"github.com/VitorVA6/fullstack-part4/internal/server"
	"github.com/VitorVA6/fullstack-part4/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OtelAddr)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)

	// Create services
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, tokens)
	blogService := service.NewBlogService(blogRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	blogController := controller.NewBlogController(blogService)

	// Create the Gin-based server
	srv := server.NewServer(userController, blogController, tokens, userRepo)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
