package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/itchan-dev/forumapi/internal/middleware"
	"github.com/itchan-dev/forumapi/internal/setup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New creates the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders)

	origins := deps.Config.Public.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	limitAuth := func(next http.Handler) http.Handler { return next }
	if deps.AuthRateLimiter != nil {
		limitAuth = middleware.RateLimit(deps.AuthRateLimiter, middleware.GetIP)
	}

	r.With(limitAuth).Post("/users", h.PostUser)

	r.Route("/authentications", func(r chi.Router) {
		r.With(limitAuth).Post("/", h.PostAuthentication)
		r.Put("/", h.PutAuthentication)
		r.Delete("/", h.DeleteAuthentication)
	})

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.PostThread)
			r.Route("/{threadId}/comments", func(r chi.Router) {
				r.Post("/", h.PostComment)
				r.Delete("/{commentId}", h.DeleteComment)
				r.Put("/{commentId}/likes", h.PutLike)
				r.Post("/{commentId}/replies", h.PostReply)
				r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}
