package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// BuildStaticExport handles POST /admin/export. It writes the static site
// to the configured output directory, same as the buildstatic command.
func (arm *AdminRoutesManager) BuildStaticExport(w http.ResponseWriter, r *http.Request) {
	if err := arm.exportService.BuildStatic(r.Context(), ""); err != nil {
		arm.logger.Error("Static export failed", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Static export failed"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Static site exported"),
		gecho.Send(),
	)
}
