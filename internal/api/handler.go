// Package api implements the esgbuddy REST API.
// It scores documents on demand and manages stored company reports and
// initiative items backed by Postgres and blob storage.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/esgbuddy/esgbuddy/internal/ingestion"
	"github.com/esgbuddy/esgbuddy/internal/items"
	"github.com/esgbuddy/esgbuddy/pkg/esg"
	"github.com/esgbuddy/esgbuddy/pkg/scoring"
)

// ItemStore is the subset of items.Service used by the API.
type ItemStore interface {
	List(ctx context.Context) ([]items.Item, error)
	Get(ctx context.Context, id string) (*items.Item, error)
	Create(ctx context.Context, fields map[string]any) (*items.Item, error)
	Update(ctx context.Context, id string, fields map[string]any) (*items.Item, error)
	Delete(ctx context.Context, id string) error
}

// Handler is the top-level API handler for the esgbuddy service.
type Handler struct {
	ingestionSvc *ingestion.Service
	itemSvc      ItemStore
	baseRoute    string
	cache        *ReportCache
}

// NewHandler creates a new API handler. baseRoute prefixes content index
// locations of reports computed by POST /api/v1/compute; empty means the
// engine default.
func NewHandler(ingestionSvc *ingestion.Service, itemSvc ItemStore, baseRoute string, cache *ReportCache) *Handler {
	if cache == nil {
		cache = NewReportCacheFromEnv()
	}
	return &Handler{
		ingestionSvc: ingestionSvc,
		itemSvc:      itemSvc,
		baseRoute:    baseRoute,
		cache:        cache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux. Write
// endpoints are wrapped with auth.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	protect := func(f http.HandlerFunc) http.Handler { return auth(f) }

	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("POST /api/v1/compute", h.handleCompute)

	// Write endpoints (auth-protected)
	mux.Handle("POST /api/companies", protect(h.handleCreateCompany))
	mux.Handle("PUT /api/companies/{id}", protect(h.handleUpdateCompany))
	mux.Handle("DELETE /api/companies/{id}", protect(h.handleDeleteCompany))
	mux.Handle("POST /api/admin/rescore", protect(h.handleRescore))
	mux.Handle("POST /api/items", protect(h.handleCreateItem))
	mux.Handle("PUT /api/items/{id}", protect(h.handleUpdateItem))
	mux.Handle("DELETE /api/items/{id}", protect(h.handleDeleteItem))

	// Read endpoints
	mux.HandleFunc("GET /api/companies", h.handleListCompanies)
	mux.HandleFunc("GET /api/companies/{id}", h.handleGetCompany)
	mux.HandleFunc("GET /api/companies/{id}/report", h.handleGetReport)
	mux.HandleFunc("GET /api/companies/{id}/content-index", h.handleContentIndex)
	mux.HandleFunc("GET /api/items", h.handleListItems)
	mux.HandleFunc("GET /api/items/{id}", h.handleGetItem)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "esgbuddy server is running"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps a service error to a status: unknown IDs are 404,
// invalid documents 400, anything else 500.
func writeServiceError(w http.ResponseWriter, err error, notFound, failed string) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, esg.ErrMissingField):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, failed+": "+err.Error())
	}
}

func (h *Handler) engine(notes bool) *scoring.Engine {
	opts := []scoring.Option{scoring.WithNotes(notes)}
	if h.baseRoute != "" {
		opts = append(opts, scoring.WithBaseRoute(h.baseRoute))
	}
	return scoring.NewEngine(opts...)
}
