package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/middleware"
	"github.com/edmsantos/account-api/internal/utils"
)

// SetupRoutes configures the routes for the application. Registration,
// authentication and the password reset flow are public; the current-user
// endpoint requires a valid session token.
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.CORS(&s.Config.CORS))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	r.Get(constants.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		if err := s.Db.HealthCheck(r.Context()); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			utils.Error(w, http.StatusServiceUnavailable, "service_unavailable", "Service is not healthy", nil)
			return
		}

		utils.JSON(w, constants.StatusOK, map[string]string{
			"status":  "healthy",
			"version": s.Config.App.Version,
		})
	})

	r.Route(constants.UserBasePath, func(r chi.Router) {
		// Public account endpoints
		r.Post("/register", s.Handlers.AuthHandler.Register)
		r.Post("/authenticate", s.Handlers.AuthHandler.Authenticate)

		r.Route("/password-reset", func(r chi.Router) {
			r.Use(chimiddleware.NoCache)
			r.Post("/request", s.Handlers.PasswordResetHandler.RequestReset)
			r.Patch("/process", s.Handlers.PasswordResetHandler.ProcessReset)
		})

		// Protected account endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(s.authProviders.JWTService))
			r.Get("/me", s.Handlers.AuthHandler.CurrentUser)
		})
	})

	s.router = r
}

// GetRouter returns the configured router. Primarily used by tests.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
