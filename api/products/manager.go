package products

import (
	"errors"
	"net/http"
	"talktag_server/api/middleware"
	"talktag_server/lib"
	"talktag_server/services"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	middleware     *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		middleware:     mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(prm.middleware.UserAuthMiddleware)

		r.Get("/products", prm.ListProducts)
		r.Get("/products/{id}", prm.FetchProduct)

		// Mutations require a CSRF token on top of the auth cookie
		r.Group(func(r chi.Router) {
			r.Use(prm.middleware.CSRFMiddleware())

			r.Post("/products", prm.CreateProduct)
			r.Put("/products/{id}", prm.UpdateProduct)
			r.Delete("/products/{id}", prm.DeleteProduct)
			r.Post("/api/update_product_folder", prm.MoveProduct)
		})
	})
}

// actor pulls the authenticated user's claims out of the request context.
func (prm *ProductRoutesManager) actor(w http.ResponseWriter, r *http.Request) (*structs.AuthClaims, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Authentication required"), gecho.Send())
		return nil, false
	}
	return claims, true
}

// respondError maps service errors onto the response envelope.
func (prm *ProductRoutesManager) respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
	case errors.Is(err, lib.ErrOwnership):
		gecho.Forbidden(w, gecho.WithMessage("You do not own this resource"), gecho.Send())
	case errors.Is(err, lib.ErrConflict), errors.Is(err, lib.ErrDuplicateSlug):
		gecho.Conflict(w, gecho.WithMessage("Conflicting product data"), gecho.Send())
	default:
		prm.logger.Error("Product operation failed", gecho.Field("action", action), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
	}
}
