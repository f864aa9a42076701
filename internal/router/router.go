package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"humanize-backend/internal/handlers"
	"humanize-backend/internal/middleware"
	"humanize-backend/internal/websocket"
)

// New builds the HTTP surface. wsHub may be nil when the activity feed is off.
func New(humanizeHandler *handlers.HumanizeHandler, wsHub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware. CORS runs before routing so preflights on any path,
	// including unknown ones, are answered directly.
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recover)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check
	r.Get("/health", handlers.Health)

	// Path used by existing browser clients.
	r.Post("/functions/v1/humanize-text", humanizeHandler.Humanize)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/humanize", humanizeHandler.Humanize)
		r.Get("/styles", handlers.ListStyles)

		if wsHub != nil {
			r.Get("/ws", wsHub.HandleWebSocket)
		}
	})

	return r
}
