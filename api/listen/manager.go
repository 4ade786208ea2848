package listen

import (
	"talktag_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ListenRoutesManager serves the public scan targets. These routes carry no
// authentication: anyone with the QR code can reach them.
type ListenRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
}

func NewListenRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
) *ListenRoutesManager {
	return &ListenRoutesManager{
		logger:         logger,
		productService: productService,
	}
}

func (lrm *ListenRoutesManager) RegisterRoutes(r chi.Router) {
	// The printed QR codes end in a trailing slash; accept both forms.
	r.Get("/listen/{slug}/", lrm.ListenPage)
	r.Get("/listen/{slug}", lrm.ListenPage)
	r.Get("/scan", lrm.ScanPage)

	r.Get("/api/products/{slug}", lrm.FetchListenPayload)
}
