package services

import (
	"context"
	"errors"
	"strings"
	"talktag_server/database"
	"talktag_server/lib"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func TestCreateProductProvisionsQRCode(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{
		Name:        "Lavender soap",
		Description: "Handmade soap.\\nScented with real lavender.",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if !lib.ValidSlug(product.Slug) {
		t.Errorf("product slug %q is not a valid slug", product.Slug)
	}
	if product.Description != "Handmade soap.\nScented with real lavender." {
		t.Errorf("description not normalized: %q", product.Description)
	}

	if product.QRCode == nil {
		t.Fatal("created product has no QR code")
	}
	wantURL := "https://example.com/listen/" + product.Slug + "/"
	if product.QRCode.PublicURL != wantURL {
		t.Errorf("QR public URL = %q, want %q", product.QRCode.PublicURL, wantURL)
	}
	if !strings.HasPrefix(product.QRCode.ImageData, "data:image/png;base64,") {
		t.Error("QR image data is not an inline PNG data URI")
	}

	count, err := database.Query[tables.QRCode](db).Where("product_id", product.ID).Count(ctx)
	if err != nil {
		t.Fatalf("count qr rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 QR row, got %d", count)
	}
}

func TestCreateProductRetriesOnSlugCollision(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	first, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "First", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	// First two attempts collide with the existing slug, third succeeds.
	fresh := lib.NewSlug()
	attempts := 0
	ps.newSlug = func() string {
		attempts++
		if attempts <= 2 {
			return first.Slug
		}
		return fresh
	}

	second, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Second", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct after collisions: %v", err)
	}
	if second.Slug != fresh {
		t.Errorf("expected retry to land on fresh slug %q, got %q", fresh, second.Slug)
	}
	if attempts != 3 {
		t.Errorf("expected 3 slug generations, got %d", attempts)
	}
	if second.QRCode == nil {
		t.Error("retried create lost its QR code")
	}
}

func TestCreateProductExhaustsSlugAttempts(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	first, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "First", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	ps.newSlug = func() string { return first.Slug }

	_, err = ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Second", Description: "d"})
	if err == nil {
		t.Fatal("expected an error when every slug collides")
	}
	if !errors.Is(err, lib.ErrDuplicateSlug) {
		t.Errorf("expected ErrDuplicateSlug in chain, got %v", err)
	}

	// The failed create must not leave partial rows behind.
	count, err := database.Query[tables.Product](db).Where("owner_id", owner).Count(ctx)
	if err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 1 {
		t.Errorf("expected only the first product to exist, got %d rows", count)
	}
}

func TestDeleteProductCascadesQRCode(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Doomed", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if err := ps.DeleteProduct(ctx, owner, product.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	count, err := database.Query[tables.QRCode](db).Where("product_id", product.ID).Count(ctx)
	if err != nil {
		t.Fatalf("count qr rows: %v", err)
	}
	if count != 0 {
		t.Errorf("QR row survived product delete")
	}

	// Scanning the printed code now is a 404.
	if _, err := ps.GetListenPayload(ctx, product.Slug); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestGetProductEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Mine", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if _, err := ps.GetProduct(ctx, stranger, product.ID); !errors.Is(err, lib.ErrOwnership) {
		t.Errorf("expected ErrOwnership for another user's product, got %v", err)
	}

	if err := ps.DeleteProduct(ctx, stranger, product.ID); !errors.Is(err, lib.ErrOwnership) {
		t.Errorf("expected ErrOwnership on delete, got %v", err)
	}
}

func TestMoveToFolder(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	fs := NewFolderService(testLogger(), db)
	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Nomad", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	folder, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Soaps"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}
	foreignFolder, err := fs.CreateFolder(ctx, stranger, &structs.FolderRequest{Name: "Theirs"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	// Into an owned folder.
	moved, err := ps.MoveToFolder(ctx, owner, &structs.MoveProductRequest{ProductID: product.ID, FolderID: &folder.ID})
	if err != nil {
		t.Fatalf("MoveToFolder: %v", err)
	}
	if moved.FolderID == nil || *moved.FolderID != folder.ID {
		t.Errorf("product not filed into folder")
	}

	// Someone else's folder is off limits.
	if _, err := ps.MoveToFolder(ctx, owner, &structs.MoveProductRequest{ProductID: product.ID, FolderID: &foreignFolder.ID}); !errors.Is(err, lib.ErrOwnership) {
		t.Errorf("expected ErrOwnership for foreign folder, got %v", err)
	}

	// Null folder unfiles.
	moved, err = ps.MoveToFolder(ctx, owner, &structs.MoveProductRequest{ProductID: product.ID, FolderID: nil})
	if err != nil {
		t.Fatalf("MoveToFolder(nil): %v", err)
	}
	if moved.FolderID != nil {
		t.Errorf("product still filed after move to nil")
	}
}

func TestEnsureQRProvisionedRepairsMissingImage(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Repaired", Description: "d"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	// Simulate a legacy row without an image.
	if _, err := database.Query[tables.QRCode](db).
		Where("product_id", product.ID).
		Update(ctx, map[string]any{"image_data": ""}); err != nil {
		t.Fatalf("blank image: %v", err)
	}

	qr, err := ps.EnsureQRProvisioned(ctx, product.ID)
	if err != nil {
		t.Fatalf("EnsureQRProvisioned: %v", err)
	}
	if !strings.HasPrefix(qr.ImageData, "data:image/png;base64,") {
		t.Error("image was not regenerated")
	}

	// Idempotent: a second call changes nothing and adds no rows.
	again, err := ps.EnsureQRProvisioned(ctx, product.ID)
	if err != nil {
		t.Fatalf("EnsureQRProvisioned again: %v", err)
	}
	if again.ImageData != qr.ImageData {
		t.Error("image regenerated on second call")
	}
	count, err := database.Query[tables.QRCode](db).Where("product_id", product.ID).Count(ctx)
	if err != nil {
		t.Fatalf("count qr rows: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 QR row, got %d", count)
	}

	if _, err := ps.EnsureQRProvisioned(ctx, uuid.New()); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown product, got %v", err)
	}
}

func TestUpdateProductResyncsQRURL(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	ps := NewProductService(testLogger(), cfg, db, nil)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{Name: "Soap", Description: "old"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	oldSlug := product.Slug

	// The deployment moved to a new domain; saving the product must bring
	// the stored URL along while keeping the slug and image.
	cfg.Site.Domain = "shop.example.org"

	newDesc := "new description"
	updated, err := ps.UpdateProduct(ctx, owner, product.ID, &structs.ProductUpdateRequest{Description: &newDesc})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	if updated.Slug != oldSlug {
		t.Errorf("slug changed on update: %q -> %q", oldSlug, updated.Slug)
	}
	wantURL := "https://shop.example.org/listen/" + oldSlug + "/"
	if updated.QRCode.PublicURL != wantURL {
		t.Errorf("QR URL = %q, want %q", updated.QRCode.PublicURL, wantURL)
	}
	if updated.Description != "new description" {
		t.Errorf("description = %q", updated.Description)
	}
}

func TestListProductsFilters(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	fs := NewFolderService(testLogger(), db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	ctx := context.Background()

	folder, err := fs.CreateFolder(ctx, owner, &structs.FolderRequest{Name: "Jams"})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	mk := func(ownerID uuid.UUID, name string, folderID *uuid.UUID) {
		t.Helper()
		if _, err := ps.CreateProduct(ctx, ownerID, &structs.ProductRequest{Name: name, Description: name + " description", FolderID: folderID}); err != nil {
			t.Fatalf("CreateProduct(%s): %v", name, err)
		}
	}
	mk(owner, "Strawberry jam", &folder.ID)
	mk(owner, "Raspberry jam", &folder.ID)
	mk(owner, "Oak bowl", nil)
	mk(other, "Not yours", nil)

	all, err := ps.ListProducts(ctx, owner, &structs.ProductListOptions{})
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(all.Data) != 3 {
		t.Errorf("expected 3 owned products, got %d", len(all.Data))
	}

	filed, err := ps.ListProducts(ctx, owner, &structs.ProductListOptions{FolderID: &folder.ID})
	if err != nil {
		t.Fatalf("ListProducts(folder): %v", err)
	}
	if len(filed.Data) != 2 {
		t.Errorf("expected 2 products in folder, got %d", len(filed.Data))
	}

	unfiled, err := ps.ListProducts(ctx, owner, &structs.ProductListOptions{Unfiled: true})
	if err != nil {
		t.Fatalf("ListProducts(unfiled): %v", err)
	}
	if len(unfiled.Data) != 1 || unfiled.Data[0].Name != "Oak bowl" {
		t.Errorf("unexpected unfiled result: %+v", unfiled.Data)
	}

	search, err := ps.ListProducts(ctx, owner, &structs.ProductListOptions{Search: "jam"})
	if err != nil {
		t.Fatalf("ListProducts(search): %v", err)
	}
	if len(search.Data) != 2 {
		t.Errorf("expected 2 search hits, got %d", len(search.Data))
	}
}

func TestGetListenPayload(t *testing.T) {
	db := newTestDB(t)
	ps := newTestProductService(t, db)
	owner := createTestUser(t, db, "owner@example.com")
	ctx := context.Background()

	product, err := ps.CreateProduct(ctx, owner, &structs.ProductRequest{
		Name:        "Honey",
		Description: "Raw wildflower honey.",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	payload, err := ps.GetListenPayload(ctx, product.Slug)
	if err != nil {
		t.Fatalf("GetListenPayload: %v", err)
	}
	if payload.Name != "Honey" || payload.Description != "Raw wildflower honey." {
		t.Errorf("unexpected payload: %+v", payload)
	}

	if _, err := ps.GetListenPayload(ctx, lib.NewSlug()); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown slug, got %v", err)
	}
}
