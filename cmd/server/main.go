// Package main is the entry point for the AquaGest API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aquagest/internal/domain/advisor"
	"aquagest/internal/domain/auth"
	"aquagest/internal/domain/state"
	v1 "aquagest/internal/infrastructure/http/v1"
	"aquagest/internal/infrastructure/http/v1/handlers"
	"aquagest/internal/infrastructure/persist"
	"aquagest/internal/infrastructure/persist/postgres"
	"aquagest/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting aquagest server")

	// --- Slot store ---
	var (
		slots  persist.SlotStore
		pinger handlers.Pinger
	)
	if dsn := getEnv("DATABASE_URL", ""); dsn != "" {
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		defer pool.Close()

		store, err := postgres.NewSlotStore(pool)
		if err != nil {
			log.Fatalw("failed to create slot store", "error", err)
		}
		slots = store
		pinger = pool
		log.Info("database slot store initialized")
	} else {
		dir := getEnv("DATA_DIR", "./data")
		store, err := persist.NewFileStore(dir)
		if err != nil {
			log.Fatalw("failed to create file slot store", "error", err, "dir", dir)
		}
		slots = store
		log.Infow("file slot store initialized", "dir", dir)
	}

	// --- Persistence gateway ---
	syncIndicator := persist.NewSyncIndicator()
	gateway := persist.NewGateway(slots, syncIndicator)

	// --- State store ---
	snap, found, err := gateway.Load(ctx)
	if err != nil {
		log.Fatalw("failed to load state snapshot", "error", err)
	}
	if !found {
		snap = state.Seed()
		log.Info("no prior state found, starting from seed data")
	} else {
		log.Infow("state snapshot loaded",
			"clients", len(snap.Clients),
			"products", len(snap.Products),
			"sales", len(snap.Sales),
		)
	}

	stateStore := state.NewStore(snap)
	gateway.Attach(stateStore)

	// Persist the seed immediately so a crash before the first mutation
	// still leaves a snapshot behind.
	if !found {
		gateway.Save(ctx, stateStore.Snapshot())
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	go syncIndicator.Run(runCtx)

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtConfig := auth.DefaultJWTConfig(jwtSecret)
	if ttl := getEnvDuration("SESSION_TTL", 0); ttl > 0 {
		jwtConfig.AccessTokenTTL = ttl
	}
	jwtService := auth.NewJWTService(jwtConfig)

	// --- Auth Service ---
	operator := auth.Operator{
		Username:     getEnv("OPERATOR_USERNAME", "admin"),
		PasswordHash: mustEnv("OPERATOR_PASSWORD_HASH"),
		DisplayName:  getEnv("OPERATOR_NAME", "Admin H Água"),
		Role:         state.RoleAdmin,
	}
	authService := auth.NewService(operator, jwtService, gateway)

	// --- Advisor Service ---
	var advisorService *advisor.Service
	if apiKey := getEnv("ADVISOR_API_KEY", ""); apiKey != "" {
		client := advisor.NewClient(advisor.ClientConfig{
			APIKey: apiKey,
			Model:  getEnv("ADVISOR_MODEL", ""),
		})
		advisorService = advisor.NewService(client)
		log.Info("advisor service initialized")
	} else {
		log.Info("no advisor API key configured, advisor routes disabled")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Store:          stateStore,
		Gateway:        gateway,
		Sync:           syncIndicator,
		StoragePinger:  pinger,
		Logger:         log,
		JWTValidator:   jwtService,
		AuthService:    authService,
		AdvisorService: advisorService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	cancelRun()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
