package auth

import (
	"talktag_server/api/middleware"
	"talktag_server/services"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	authService  *services.AuthService
	cacheService *services.CacheService
	emailService *services.EmailService
	cfg          *structs.Config
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	authService *services.AuthService,
	emailService *services.EmailService,
	cacheService *services.CacheService,
	cfg *structs.Config,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		authService:  authService,
		emailService: emailService,
		cacheService: cacheService,
		cfg:          cfg,
		mw:           mw,
	}
}

func (rrm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// CSRF token endpoint (must be called before protected routes)
		r.Get("/csrf", rrm.HandleCSRF)

		r.Group(func(r chi.Router) {
			r.Use(rrm.mw.CSRFMiddleware())
			r.Post("/register", rrm.HandleRegister)
			r.Post("/login", rrm.HandleLogin)
			r.Post("/logout", rrm.HandleLogout)
		})

		r.Group(func(r chi.Router) {
			r.Use(rrm.mw.UserAuthMiddleware)
			r.Get("/me", rrm.HandleMe)
		})
	})
}
