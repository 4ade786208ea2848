package listen

import (
	"errors"
	"net/http"
	"talktag_server/lib"

	"github.com/MonkyMars/gecho"
)

// FetchListenPayload handles GET /api/products/{slug}, the JSON twin of the
// listen page for clients that render their own player.
func (lrm *ListenRoutesManager) FetchListenPayload(w http.ResponseWriter, r *http.Request) {
	slug, err := lib.SlugParam(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product slug"), gecho.Send())
		return
	}

	payload, err := lrm.productService.GetListenPayload(r.Context(), slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w, gecho.WithMessage("Product not found"), gecho.Send())
			return
		}
		lrm.logger.Error("Failed to fetch listen payload", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(payload),
		gecho.Send(),
	)
}
