package listen

import (
	"errors"
	"net/http"
	"talktag_server/lib"
	"talktag_server/templates"

	"github.com/MonkyMars/gecho"
)

// ListenPage handles GET /listen/{slug}/, the page a scanned QR code opens.
// It renders the product's name and description; speech synthesis happens in
// the visitor's browser.
func (lrm *ListenRoutesManager) ListenPage(w http.ResponseWriter, r *http.Request) {
	slug, err := lib.SlugParam(r)
	if err != nil {
		lrm.notFoundPage(w)
		return
	}

	payload, err := lrm.productService.GetListenPayload(r.Context(), slug)
	if err != nil {
		if !errors.Is(err, lib.ErrNotFound) {
			lrm.logger.Error("Failed to load listen page", gecho.Field("slug", slug), gecho.Field("error", err))
		}
		lrm.notFoundPage(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "listen.html", templates.ListenPage{
		Name:        payload.Name,
		Description: payload.Description,
	}); err != nil {
		lrm.logger.Error("Failed to render listen page", gecho.Field("slug", slug), gecho.Field("error", err))
	}
}

// ScanPage handles GET /scan, the in-browser QR scanner.
func (lrm *ListenRoutesManager) ScanPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "scan.html", nil); err != nil {
		lrm.logger.Error("Failed to render scan page", gecho.Field("error", err))
	}
}

func (lrm *ListenRoutesManager) notFoundPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := templates.Render(w, "notfound.html", nil); err != nil {
		lrm.logger.Error("Failed to render not-found page", gecho.Field("error", err))
	}
}
