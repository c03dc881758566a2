package handler

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"storybot/metrics"
)

// NewRouter wires the HTTP surface. CORS is open to every origin.
func NewRouter(g Generator, m *metrics.Metrics) http.Handler {
	r := mux.NewRouter()
	r.Handle("/generate", NewGenerateHandler(g, m)).Methods(http.MethodPost)
	r.HandleFunc("/health", Health).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})(r)
}
