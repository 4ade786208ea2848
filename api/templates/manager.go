package templates

import (
	"errors"
	"net/http"
	"talktag_server/api/middleware"
	"talktag_server/lib"
	"talktag_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// TemplateRoutesManager serves the shared description templates. Templates
// are global: every logged-in user sees the same list.
type TemplateRoutesManager struct {
	logger          *gecho.Logger
	templateService *services.TemplateService
	middleware      *middleware.Middleware
}

func NewTemplateRoutesManager(
	logger *gecho.Logger,
	templateService *services.TemplateService,
	mw *middleware.Middleware,
) *TemplateRoutesManager {
	return &TemplateRoutesManager{
		logger:          logger,
		templateService: templateService,
		middleware:      mw,
	}
}

func (trm *TemplateRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(trm.middleware.UserAuthMiddleware)

		r.Get("/templates", trm.ListTemplates)

		r.Group(func(r chi.Router) {
			r.Use(trm.middleware.CSRFMiddleware())

			r.Post("/templates", trm.CreateTemplate)
			r.Post("/templates/{id}/use", trm.UseTemplate)
			r.Delete("/templates/{id}", trm.DeleteTemplate)
		})
	})
}

func (trm *TemplateRoutesManager) respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Template not found"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage("Conflicting template data"), gecho.Send())
	default:
		trm.logger.Error("Template operation failed", gecho.Field("action", action), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
	}
}
