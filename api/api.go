package api

import (
	"context"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store persists food plates for the REST backend.
type Store interface {
	List(ctx context.Context) ([]FoodPlate, error)
	Create(ctx context.Context, plate FoodPlate) (FoodPlate, error)
	Update(ctx context.Context, plate FoodPlate) (FoodPlate, error)
	Delete(ctx context.Context, id int64) error
}

type handlers struct {
	store  Store
	logger *slog.Logger
}

// Router serves the /foods contract on top of store. Each router registers
// its metrics on its own registry, exposed at /metrics.
func Router(store Store, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := handlers{store: store, logger: logger}

	registry := prometheus.NewRegistry()
	metrics := newHTTPMetrics(registry)

	r := mux.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.middleware)

	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.HandleFunc("/foods", h.handleFoodList).Methods(http.MethodGet)
	r.HandleFunc("/foods", h.handleFoodCreate).Methods(http.MethodPost)
	r.HandleFunc("/foods/{id}", h.handleFoodUpdate).Methods(http.MethodPut)
	r.HandleFunc("/foods/{id}", h.handleFoodDelete).Methods(http.MethodDelete)

	// CORS wraps the router so preflight requests never reach route
	// matching.
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})(r)
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
