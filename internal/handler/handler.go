package handler

import (
	"context"
	"net/http"
)

// DB is the minimal database dependency for infrastructure endpoints.
// *pgxpool.Pool satisfies it.
type DB interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db DB
}

func New(db DB) *Handler {
	return &Handler{db: db}
}

// CORS allows any origin. The contact form and blog are fetched from a
// public browser client, so preflight requests must succeed without an
// origin allowlist. Header list matches what the frontend client sends.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
