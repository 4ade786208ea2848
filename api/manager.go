package api

import (
	"talktag_server/api/admin"
	"talktag_server/api/auth"
	"talktag_server/api/folders"
	"talktag_server/api/health"
	"talktag_server/api/listen"
	"talktag_server/api/middleware"
	"talktag_server/api/products"
	"talktag_server/api/templates"
	"talktag_server/services"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	productRoutes  *products.ProductRoutesManager
	folderRoutes   *folders.FolderRoutesManager
	templateRoutes *templates.TemplateRoutesManager
	listenRoutes   *listen.ListenRoutesManager
	healthRoutes   *health.HealthRoutesManager
	authRoutes     *auth.AuthRoutesManager
	adminRoutes    *admin.AdminRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService, mw),
		folderRoutes:   folders.NewFolderRoutesManager(logger, sm.FolderService, mw),
		templateRoutes: templates.NewTemplateRoutesManager(logger, sm.TemplateService, mw),
		listenRoutes:   listen.NewListenRoutesManager(logger, sm.ProductService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
		authRoutes:     auth.NewAuthRoutesManager(logger, sm.AuthService, sm.EmailService, sm.CacheService, cfg, mw),
		adminRoutes:    admin.NewAdminRoutesManager(logger, sm.ProductService, sm.ExportService, mw),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.folderRoutes.RegisterRoutes(r)
	rm.templateRoutes.RegisterRoutes(r)
	rm.listenRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
	rm.authRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
}
