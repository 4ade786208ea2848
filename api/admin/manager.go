package admin

import (
	"talktag_server/api/middleware"
	"talktag_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AdminRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	exportService  *services.ExportService
	middleware     *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	exportService *services.ExportService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		productService: productService,
		exportService:  exportService,
		middleware:     mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.middleware.UserAuthMiddleware)
		r.Use(arm.middleware.AdminAuthMiddleware)

		r.Get("/products", arm.ListAllProducts)

		r.Group(func(r chi.Router) {
			r.Use(arm.middleware.CSRFMiddleware())
			r.Post("/export", arm.BuildStaticExport)
		})
	})
}
