package products

import (
	"net/http"
	"talktag_server/lib"

	"github.com/MonkyMars/gecho"
)

// DeleteProduct handles DELETE /products/{id}. The QR code row goes with
// the product; scanning the old code afterwards yields a not-found page.
func (prm *ProductRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	claims, ok := prm.actor(w, r)
	if !ok {
		return
	}

	productID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return
	}

	if err := prm.productService.DeleteProduct(r.Context(), claims.Sub, productID); err != nil {
		prm.respondError(w, err, "delete")
		return
	}

	prm.logger.Info("Product deleted",
		gecho.Field("product_id", productID),
		gecho.Field("owner_id", claims.Sub),
	)

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
