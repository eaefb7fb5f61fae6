package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiBasePath    = "/api"
	authBasePath   = "/auth"
	incomeBasePath = "/income"
	targetBasePath = "/target"
)

const paramID = "id"

// Routes builds the router: public auth endpoints, then the protected
// income/target/summary surface behind the bearer-token gate.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(SetHeader(headerContentType, contentTypeJSONUTF8))

	r.Route(apiBasePath, func(r chi.Router) {
		r.Route(authBasePath, func(r chi.Router) {
			r.Post("/register", MakeHandler(s.handleRegister))
			r.Post("/login", MakeHandler(s.handleLogin))
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(s.users))

			r.Route(incomeBasePath, func(r chi.Router) {
				r.Post("/", MakeHandler(s.handleCreateIncome))
				r.Get("/", MakeHandler(s.handleListIncome))
				r.Get("/monthly-summary", MakeHandler(s.handleMonthlySummary))
				r.Get("/ytd", MakeHandler(s.handleYearToDate))
				r.Get("/yearly", MakeHandler(s.handleYearlySummary))
				r.Delete("/{"+paramID+"}", MakeHandler(s.handleDeleteIncome))
			})

			r.Route(targetBasePath, func(r chi.Router) {
				r.Post("/", MakeHandler(s.handleSetTarget))
				r.Get("/", MakeHandler(s.handleGetTarget))
			})
		})
	})

	r.Get("/healthz", handleHealthCheck)

	return r
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(headerContentType, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
