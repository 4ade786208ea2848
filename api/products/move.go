package products

import (
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

// MoveProduct handles POST /api/update_product_folder, the drag-and-drop
// endpoint of the dashboard. A null folder_id unfiles the product.
func (prm *ProductRoutesManager) MoveProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.MoveProductRequest](r)
	if err != nil {
		prm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the move request and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	product, err := prm.productService.MoveToFolder(r.Context(), claims.Sub, body)
	if err != nil {
		prm.respondError(w, err, "move")
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
