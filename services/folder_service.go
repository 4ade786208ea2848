package services

import (
	"context"
	"talktag_server/database"
	"talktag_server/lib"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// FolderService manages dashboard folders. Folders are organizational only:
// deleting one unfiles its products (the FK sets folder_id to NULL) and never
// touches the products themselves.
type FolderService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewFolderService(logger *gecho.Logger, db *database.DB) *FolderService {
	return &FolderService{
		logger: logger,
		db:     db,
	}
}

func (fs *FolderService) CreateFolder(ctx context.Context, ownerID uuid.UUID, req *structs.FolderRequest) (*tables.Folder, error) {
	folder := &tables.Folder{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}

	if _, err := database.Create(fs.db, ctx, folder); err != nil {
		return nil, lib.MapDBError(err)
	}

	return folder, nil
}

func (fs *FolderService) ListFolders(ctx context.Context, ownerID uuid.UUID) ([]tables.Folder, error) {
	return database.Query[tables.Folder](fs.db).
		Where("owner_id", ownerID).
		OrderBy("name", database.ASC).
		All(ctx)
}

func (fs *FolderService) RenameFolder(ctx context.Context, ownerID, folderID uuid.UUID, req *structs.FolderRequest) (*tables.Folder, error) {
	folder, err := fs.getOwned(ctx, ownerID, folderID)
	if err != nil {
		return nil, err
	}

	folder.Name = req.Name
	if _, err := database.UpdateByID[tables.Folder](fs.db, ctx, folder.ID, map[string]any{
		"name": folder.Name,
	}); err != nil {
		return nil, err
	}

	return folder, nil
}

// DeleteFolder removes a folder. Products inside it survive and become
// unfiled through the ON DELETE SET NULL constraint.
func (fs *FolderService) DeleteFolder(ctx context.Context, ownerID, folderID uuid.UUID) error {
	folder, err := fs.getOwned(ctx, ownerID, folderID)
	if err != nil {
		return err
	}

	_, err = database.DeleteByID[tables.Folder](fs.db, ctx, folder.ID)
	return err
}

func (fs *FolderService) getOwned(ctx context.Context, ownerID, folderID uuid.UUID) (*tables.Folder, error) {
	folder, err := database.FindByID[tables.Folder](fs.db, ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, lib.ErrNotFound
	}
	if err := lib.RequireOwner(folder.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return folder, nil
}
