package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListAllProducts handles GET /admin/products, every product across all
// owners with QR codes attached.
func (arm *AdminRoutesManager) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := arm.productService.ListAll(r.Context())
	if err != nil {
		arm.logger.Error("Failed to list products", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products": products,
			"count":    len(products),
		}),
		gecho.Send(),
	)
}
