package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/qa-agents/internal/config"
	"github.com/saulo-duarte/qa-agents/internal/middlewares"
	"github.com/saulo-duarte/qa-agents/internal/session"
)

type RouterConfig struct {
	SessionHandler *session.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", root)

	r.Route("/run-session", func(r chi.Router) {
		r.Mount("/", session.Routes(cfg.SessionHandler))
	})

	return r
}

func root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Dual-LLM Q&A Agents API",
		"endpoints": map[string]string{
			"/run-session": "POST - Generate Q&A pairs",
		},
	})
}
