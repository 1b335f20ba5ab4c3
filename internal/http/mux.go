package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
)

// A single notification is a few KB.
const maxBodyBytes = 1 << 20

func limitBody(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, request *http.Request) {
		request.Body = http.MaxBytesReader(w, request.Body, maxBodyBytes)
		next.ServeHTTP(w, request)
	}

	return http.HandlerFunc(f)
}

func NewChiMux(webhook WebhookHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger, middleware.Recoverer)

	r.Get("/healthz", webhook.Health)

	r.With(limitBody).
		Post("/events", webhook.Receive)

	return r
}
