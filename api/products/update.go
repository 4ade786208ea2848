package products

import (
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

// UpdateProduct handles PUT /products/{id}. Name and description are the
// only editable fields; the slug never changes once assigned.
func (prm *ProductRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	productID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductUpdateRequest](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.UpdateProduct(r.Context(), claims.Sub, productID, body)
	if err != nil {
		prm.respondError(w, err, "update")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
