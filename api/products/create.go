package products

import (
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateProduct handles POST /products. The product and its QR code are
// created together; a response without a QR code is impossible.
func (prm *ProductRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), claims.Sub, body)
	if err != nil {
		prm.respondError(w, err, "create")
		return
	}

	prm.logger.Info("Product created",
		gecho.Field("product_id", product.ID),
		gecho.Field("slug", product.Slug),
		gecho.Field("owner_id", claims.Sub),
	)

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
