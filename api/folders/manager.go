package folders

import (
	"errors"
	"net/http"
	"talktag_server/api/middleware"
	"talktag_server/lib"
	"talktag_server/services"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type FolderRoutesManager struct {
	logger        *gecho.Logger
	folderService *services.FolderService
	middleware    *middleware.Middleware
}

func NewFolderRoutesManager(
	logger *gecho.Logger,
	folderService *services.FolderService,
	mw *middleware.Middleware,
) *FolderRoutesManager {
	return &FolderRoutesManager{
		logger:        logger,
		folderService: folderService,
		middleware:    mw,
	}
}

func (frm *FolderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(frm.middleware.UserAuthMiddleware)

		r.Get("/folders", frm.ListFolders)

		r.Group(func(r chi.Router) {
			r.Use(frm.middleware.CSRFMiddleware())

			r.Post("/folders", frm.CreateFolder)
			r.Put("/folders/{id}", frm.RenameFolder)
			r.Delete("/folders/{id}", frm.DeleteFolder)
		})
	})
}

func (frm *FolderRoutesManager) actor(w http.ResponseWriter, r *http.Request) (*structs.AuthClaims, bool) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Authentication required"), gecho.Send())
		return nil, false
	}
	return claims, true
}

func (frm *FolderRoutesManager) respondError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage("Folder not found"), gecho.Send())
	case errors.Is(err, lib.ErrOwnership):
		gecho.Forbidden(w, gecho.WithMessage("You do not own this folder"), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage("Conflicting folder data"), gecho.Send())
	default:
		frm.logger.Error("Folder operation failed", gecho.Field("action", action), gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
	}
}
