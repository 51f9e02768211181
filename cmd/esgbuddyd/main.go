// Command esgbuddyd is the esgbuddy HTTP service.
// It serves the scoring API, the stored company reports, the initiative
// items and a health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/esgbuddy/esgbuddy/internal/api"
	"github.com/esgbuddy/esgbuddy/internal/company"
	"github.com/esgbuddy/esgbuddy/internal/ingestion"
	"github.com/esgbuddy/esgbuddy/internal/items"
	"github.com/esgbuddy/esgbuddy/internal/platform"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

type config struct {
	Port        string
	DatabaseURL string
	APIKey      string
	BaseRoute   string
}

func loadConfig() config {
	return config{
		Port:        envOrDefault("PORT", "8080"),
		DatabaseURL: envOrDefault("DATABASE_URL", "postgres://localhost:5432/esgbuddy?sslmode=disable"),
		APIKey:      os.Getenv("API_KEY"),
		BaseRoute:   envOrDefault("BASE_ROUTE", scoring.DefaultBaseRoute),
	}
}

func main() {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	storage, err := ingestion.NewStorage(ctx, ingestion.StorageConfigFromEnv())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	engine := scoring.NewEngine(scoring.WithBaseRoute(cfg.BaseRoute))
	ingestionSvc := ingestion.NewService(company.NewService(db), storage, engine)
	handler := api.NewHandler(ingestionSvc, items.NewService(db), cfg.BaseRoute, api.NewReportCacheFromEnv())

	if cfg.APIKey == "" {
		log.Println("API_KEY not set, write endpoints are unauthenticated")
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, api.APIKeyAuth(cfg.APIKey))
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("starting esgbuddyd on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "database unreachable"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
