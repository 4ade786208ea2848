package folders

import (
	"net/http"
	"talktag_server/lib"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
)

// ListFolders handles GET /folders, alphabetically for the sidebar.
func (frm *FolderRoutesManager) ListFolders(w http.ResponseWriter, r *http.Request) {
	claims, ok := frm.actor(w, r)
	if !ok {
		return
	}

	folders, err := frm.folderService.ListFolders(r.Context(), claims.Sub)
	if err != nil {
		frm.respondError(w, err, "list")
		return
	}

	gecho.Success(w,
		gecho.WithData(folders),
		gecho.Send(),
	)
}

// CreateFolder handles POST /folders.
func (frm *FolderRoutesManager) CreateFolder(w http.ResponseWriter, r *http.Request) {
	claims, ok := frm.actor(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.FolderRequest](r)
	if err != nil {
		frm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the folder name and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	folder, err := frm.folderService.CreateFolder(r.Context(), claims.Sub, body)
	if err != nil {
		frm.respondError(w, err, "create")
		return
	}

	gecho.Success(w,
		gecho.WithData(folder),
		gecho.Send(),
	)
}

// RenameFolder handles PUT /folders/{id}.
func (frm *FolderRoutesManager) RenameFolder(w http.ResponseWriter, r *http.Request) {
	claims, ok := frm.actor(w, r)
	if !ok {
		return
	}

	folderID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid folder ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.FolderRequest](r)
	if err != nil {
		frm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the folder name and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	folder, err := frm.folderService.RenameFolder(r.Context(), claims.Sub, folderID, body)
	if err != nil {
		frm.respondError(w, err, "rename")
		return
	}

	gecho.Success(w,
		gecho.WithData(folder),
		gecho.Send(),
	)
}

// DeleteFolder handles DELETE /folders/{id}. Products inside the folder are
// unfiled, never deleted.
func (frm *FolderRoutesManager) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	claims, ok := frm.actor(w, r)
	if !ok {
		return
	}

	folderID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid folder ID"), gecho.Send())
		return
	}

	if err := frm.folderService.DeleteFolder(r.Context(), claims.Sub, folderID); err != nil {
		frm.respondError(w, err, "delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Folder deleted"),
		gecho.Send(),
	)
}
