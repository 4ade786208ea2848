package services

import (
	"context"
	"errors"
	"talktag_server/lib"
	"talktag_server/structs"
	"testing"
)

func TestFolderLifecycle(t *testing.T) {
	db := newTestDB(t)
	fs := NewFolderService(testLogger(), db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	folder, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Preserves"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Bread"}); err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	list, err := fs.ListFolders(ctx, owner)
	if err != nil {
		t.Fatalf("ListFolders: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 folders, got %d", len(list))
	}
	// Alphabetical for the sidebar.
	if list[0].Name != "Bread" || list[1].Name != "Preserves" {
		t.Errorf("folders not sorted by name: %q, %q", list[0].Name, list[1].Name)
	}

	renamed, err := fs.RenameFolder(ctx, owner, folder.ID, &structs.FolderRequest{Name: "Jams"})
	if err != nil {
		t.Fatalf("RenameFolder: %v", err)
	}
	if renamed.Name != "Jams" {
		t.Errorf("rename did not stick: %q", renamed.Name)
	}

	if err := fs.DeleteFolder(ctx, owner, folder.ID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}
	list, err = fs.ListFolders(ctx, owner)
	if err != nil {
		t.Fatalf("ListFolders: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 folder after delete, got %d", len(list))
	}
}

func TestFolderOwnership(t *testing.T) {
	db := newTestDB(t)
	fs := NewFolderService(testLogger(), db)
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	ctx := context.Background()

	folder, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Private"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if _, err := fs.RenameFolder(ctx, stranger, folder.ID, &structs.FolderRequest{Name: "Hijacked"}); !errors.Is(err, lib.ErrOwnership) {
		t.Errorf("expected ErrOwnership on rename, got %v", err)
	}
	if err := fs.DeleteFolder(ctx, stranger, folder.ID); !errors.Is(err, lib.ErrOwnership) {
		t.Errorf("expected ErrOwnership on delete, got %v", err)
	}
}

// Deleting a folder unfiles its products; they must never disappear with it.
func TestDeleteFolderUnfilesProducts(t *testing.T) {
	db := newTestDB(t)
	fs := NewFolderService(testLogger(), db)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	folder, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Doomed"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{
		Name:        "Survivor",
		Description: "d",
		FolderID:    &folder.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := fs.DeleteFolder(ctx, owner, folder.ID); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	got, err := ps.GetProduct(ctx, owner, product.ID)
	if err != nil {
		t.Fatalf("GetProduct after folder delete: %v", err)
	}
	if got.FolderID != nil {
		t.Errorf("product still references deleted folder")
	}

	// The listen page keeps working too.
	if _, err := ps.GetListenPayload(ctx, product.Slug); err != nil {
		t.Errorf("listen payload broken after folder delete: %v", err)
	}
}
