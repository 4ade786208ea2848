package services

import (
	"talktag_server/database"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	EmailService    *EmailService
	CacheService    *CacheService
	HealthService   *HealthService
	ProductService  *ProductService
	FolderService   *FolderService
	TemplateService *TemplateService
	ExportService   *ExportService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	authService := NewAuthService(cfg, logger, db, cacheService)
	emailService := NewEmailService(logger, cfg)
	healthService := NewHealthService(logger, db, cacheService)
	productService := NewProductService(logger, cfg, db, cacheService)
	folderService := NewFolderService(logger, db)
	templateService := NewTemplateService(logger, db)
	exportService := NewExportService(logger, cfg, productService)

	return &ServiceManager{
		AuthService:     authService,
		EmailService:    emailService,
		CacheService:    cacheService,
		HealthService:   healthService,
		ProductService:  productService,
		FolderService:   folderService,
		TemplateService: templateService,
		ExportService:   exportService,
	}
}
