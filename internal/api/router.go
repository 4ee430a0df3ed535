package api

import (
	"net/http"

	"github.com/dom/superheroes-api/internal/api/handlers"
	"github.com/dom/superheroes-api/internal/api/middleware"
	"github.com/dom/superheroes-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	heroHandler := handlers.NewHeroHandler(services.Hero, logger)

	r.Get("/", heroHandler.Welcome)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/superheroes", func(r chi.Router) {
		r.Get("/", heroHandler.GetAll)
		// chi matches the static segment before {id}.
		r.Get("/compare", heroHandler.Compare)
		r.Get("/{id}", heroHandler.Get)
		r.Get("/{id}/powerstats", heroHandler.GetPowerstats)
	})

	return r
}
