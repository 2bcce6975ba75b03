package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/api"
	"github.com/mrunankdekhane/task-manager/internal/api/handler"
	"github.com/mrunankdekhane/task-manager/internal/api/middleware"
	"github.com/mrunankdekhane/task-manager/internal/api/view"
	"github.com/mrunankdekhane/task-manager/internal/app/service"
	"github.com/mrunankdekhane/task-manager/internal/app/session"
	"github.com/mrunankdekhane/task-manager/internal/common/security"
	"github.com/mrunankdekhane/task-manager/internal/domain/repository"
	"github.com/mrunankdekhane/task-manager/internal/platform/cache"
	"github.com/mrunankdekhane/task-manager/internal/platform/config"
	"github.com/mrunankdekhane/task-manager/internal/platform/database"
)

func setupSlog() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
}

func main() {
	// 1. Logging & Configuration
	setupSlog()
	config.Load()
	security.InitHashCost(config.AppConfig.BcryptCost)
	fmt.Println("Configuration loaded.")

	// 2. Initialize Database
	database.Connect()
	defer database.Close()
	database.Migrate()
	fmt.Println("Database connected.")

	// 3. Session store: redis by default, in-process memory as fallback
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()

	var sessionStore session.Store
	if config.AppConfig.SessionBackend == "memory" {
		mem := session.NewMemoryStore()
		go mem.Run(sweepCtx)
		sessionStore = mem
		fmt.Println("In-memory session store started.")
	} else {
		cache.ConnectRedis()
		defer cache.CloseRedis()
		sessionStore = session.NewRedisStore(cache.RDB)
		fmt.Println("Redis session store connected.")
	}

	// 4. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	taskRepo := repository.NewPgTaskRepository(database.DB)

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo)
	sessionManager := service.NewSessionManager(sessionStore, config.AppConfig.SessionTTL)
	taskService := service.NewTaskService(taskRepo)

	// 6. Initialize Router & HTTP Server
	views := view.New()
	authHandler := handler.NewAuthHandler(authService, sessionManager, views, config.AppConfig.SessionCookieName)
	taskHandler := handler.NewTaskHandler(taskService, userRepo, views)
	guard := middleware.RequireSession(sessionManager, config.AppConfig.SessionCookieName)

	router := api.NewRouter(authHandler, taskHandler, guard)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")
	sweepCancel() // Stop the session sweeper if one is running

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
