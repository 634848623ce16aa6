/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. Metrics:    Prometheus request counters and latency
  5. CORS:       Cross-origin requests for frontend
  6. Auth:       Optional JWT bearer check on /api (when a secret is set)

ROUTE GROUPS:
  /api/spaces                         Space creation
  /api/spaces/{spaceUUID}/*           Everything scoped to one space
  /healthz                            Liveness probe
  /metrics                            Prometheus scrape endpoint

SEE ALSO:
  - handlers.go: Space, product, person, and tag handlers
  - assignments.go: Assignment submission, history, reassignments
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fordlabs/peoplemover/board"
)

// RouterOptions configures optional router behavior.
type RouterOptions struct {
	// AllowedOrigins for CORS. Empty means the localhost dev defaults.
	AllowedOrigins []string
	// Auth protects /api routes when non-nil.
	Auth *JWTService
}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:8080"}
	}

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Operational endpoints
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth.RequireAuth)
		}

		r.Route("/spaces", func(r chi.Router) {
			r.Post("/", h.CreateSpace)

			r.Route("/{spaceUUID}", func(r chi.Router) {
				r.Get("/", h.GetSpace)

				r.Route("/products", func(r chi.Router) {
					r.Get("/", h.ListProducts)
					r.Post("/", h.CreateProduct)
					r.Put("/{productID}", h.UpdateProduct)
					r.Delete("/{productID}", h.DeleteProduct)
				})

				r.Route("/people", func(r chi.Router) {
					r.Get("/", h.ListPeople)
					r.Post("/", h.CreatePerson)
					r.Put("/{personID}", h.UpdatePerson)
					r.Delete("/{personID}", h.DeletePerson)
					r.Post("/{personID}/assignments", h.CreateAssignments)
					r.Get("/{personID}/assignments/history", h.GetAssignmentHistory)
				})

				r.Get("/reassignment", h.GetReassignments)

				tagRoutes(r, "/roles", h, board.TagKindRole)
				tagRoutes(r, "/person-tags", h, board.TagKindPersonTag)
				tagRoutes(r, "/product-tags", h, board.TagKindProductTag)
				tagRoutes(r, "/locations", h, board.TagKindLocation)
			})
		})
	})

	return r
}

// tagRoutes mounts the CRUD route set shared by every tag kind.
func tagRoutes(r chi.Router, pattern string, h *Handler, kind board.TagKind) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.ListTags(kind))
		r.Post("/", h.CreateTag(kind))
		r.Put("/{tagID}", h.UpdateTag(kind))
		r.Delete("/{tagID}", h.DeleteTag(kind))
	})
}
