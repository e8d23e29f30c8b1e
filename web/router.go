package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mww/guess_or_mess/config"
	"github.com/mww/guess_or_mess/controller"
	"github.com/mww/guess_or_mess/view"
	"github.com/unrolled/render"
)

func getRouter(cfg *config.Config, ctrl controller.C, render *render.Render, logger view.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", rootHandler(render))

	r.Route("/leaderboard", func(r chi.Router) {
		r.Get("/", leaderboardHandler(ctrl, render, logger, cfg))
		// The "Go Back" control of the leaderboard page.
		r.Post("/back", backHandler())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		r.Get("/leaderboard", apiLeaderboardHandler(ctrl, render, logger, cfg))
	})

	return r
}
