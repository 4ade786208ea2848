package products

import (
	"net/http"
	"talktag_server/handling"
	"talktag_server/lib"

	"github.com/MonkyMars/gecho"
)

// ListProducts handles GET /products for the owner's dashboard with
// filtering and pagination
func (prm *ProductRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := prm.productService.ListProducts(r.Context(), claims.Sub, opts)
	if err != nil {
		prm.respondError(w, err, "list")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// FetchProduct handles GET /products/{id}. The QR code relation is always
// loaded so the dashboard can show slug, public URL and image together.
func (prm *ProductRoutesManager) FetchProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	productID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	product, err := prm.productService.GetProduct(r.Context(), claims.Sub, productID)
	if err != nil {
		prm.respondError(w, err, "fetch")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
