package services

import (
	"context"
	"errors"
	"fmt"
	"talktag_server/database"
	"talktag_server/lib"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// maxSlugAttempts bounds the create retry loop. Slug collisions are
// practically unreachable with 128-bit slugs; hitting this limit means the
// generator is broken, not unlucky.
const maxSlugAttempts = 5

// ProductService owns the product + QR code lifecycle. A product and its QR
// code are created in one transaction and deleted as one unit; the QR code's
// public URL is derived state and is resynchronized on every save.
type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
	cache  *CacheService // nil disables caching
	site   *structs.SiteConfig

	// newSlug generates candidate slugs. Swappable in tests to force
	// collisions.
	newSlug func() string
}

func NewProductService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cache *CacheService) *ProductService {
	return &ProductService{
		logger:  logger,
		db:      db,
		cache:   cache,
		site:    cfg.Site,
		newSlug: lib.NewSlug,
	}
}

// CreateProduct creates a product together with its QR code in a single
// transaction. A unique violation on the slug aborts the whole transaction,
// so each retry starts a fresh one with a fresh slug.
func (ps *ProductService) CreateProduct(ctx context.Context, ownerID uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	if req.FolderID != nil {
		if err := ps.checkFolderOwnership(ctx, ownerID, *req.FolderID); err != nil {
			return nil, err
		}
	}

	description := lib.NormalizeDescription(req.Description)

	var lastErr error
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		product, err := ps.createOnce(ctx, ownerID, req, description)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, lib.ErrDuplicateSlug) {
			return nil, err
		}

		lastErr = err
		ps.logger.Warn("Slug collision on product create, retrying",
			gecho.Field("attempt", attempt),
			gecho.Field("owner_id", ownerID),
		)
	}

	return nil, fmt.Errorf("exhausted %d slug attempts: %w", maxSlugAttempts, lastErr)
}

func (ps *ProductService) createOnce(ctx context.Context, ownerID uuid.UUID, req *structs.ProductRequest, description string) (*tables.Product, error) {
	now := time.Now()
	product := &tables.Product{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		FolderID:    req.FolderID,
		Name:        req.Name,
		Description: description,
		Slug:        ps.newSlug(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return database.TransactionWithResult(ctx, ps.db, func(ctx context.Context, tx bun.Tx) (*tables.Product, error) {
		if _, err := database.QueryTx[tables.Product](tx).Insert(ctx, product); err != nil {
			return nil, lib.MapDBError(err)
		}

		qr, err := ps.provisionQR(ctx, tx, product)
		if err != nil {
			return nil, err
		}
		product.QRCode = qr

		return product, nil
	})
}

// provisionQR brings a product's QR record in sync: the row exists, its
// public URL matches the current site configuration and an image is present.
// Safe to call any number of times; the image is generated at most once.
func (ps *ProductService) provisionQR(ctx context.Context, idb bun.IDB, product *tables.Product) (*tables.QRCode, error) {
	url := lib.ListenURL(ps.site, product.Slug)

	existing, err := database.QueryTx[tables.QRCode](idb).
		Where("product_id", product.ID).
		First(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		png, err := lib.EncodeQRPNG(url)
		if err != nil {
			return nil, err
		}

		now := time.Now()
		qr := &tables.QRCode{
			ID:        uuid.New(),
			ProductID: product.ID,
			PublicURL: url,
			ImageData: lib.DataURI(png),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := database.QueryTx[tables.QRCode](idb).Insert(ctx, qr); err != nil {
			return nil, lib.MapDBError(err)
		}
		return qr, nil
	}

	updates := map[string]any{}
	if existing.PublicURL != url {
		existing.PublicURL = url
		updates["public_url"] = url
	}
	if existing.ImageData == "" {
		png, err := lib.EncodeQRPNG(url)
		if err != nil {
			return nil, err
		}
		existing.ImageData = lib.DataURI(png)
		updates["image_data"] = existing.ImageData
	}

	if len(updates) > 0 {
		existing.UpdatedAt = time.Now()
		updates["updated_at"] = existing.UpdatedAt
		if _, err := database.QueryTx[tables.QRCode](idb).
			Where("id", existing.ID).
			Update(ctx, updates); err != nil {
			return nil, err
		}
	}

	return existing, nil
}

// EnsureQRProvisioned repairs a product whose QR record is missing or stale.
// Used by the static exporter and by reads that must hand out an image.
func (ps *ProductService) EnsureQRProvisioned(ctx context.Context, productID uuid.UUID) (*tables.QRCode, error) {
	product, err := database.FindByID[tables.Product](ps.db, ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	return database.TransactionWithResult(ctx, ps.db, func(ctx context.Context, tx bun.Tx) (*tables.QRCode, error) {
		return ps.provisionQR(ctx, tx, product)
	})
}

// GetProduct returns one product with its QR code, enforcing ownership.
func (ps *ProductService) GetProduct(ctx context.Context, ownerID, productID uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		With("QRCode").
		Where("p.id", productID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	if err := lib.RequireOwner(product.OwnerID, ownerID); err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts returns a page of the owner's products, newest first.
func (ps *ProductService) ListProducts(ctx context.Context, ownerID uuid.UUID, opts *structs.ProductListOptions) (*database.PaginationResult[tables.Product], error) {
	q := database.Query[tables.Product](ps.db).
		Where("p.owner_id", ownerID).
		OrderBy("p.created_at", database.DESC)

	if opts.IncludeQR {
		q = q.With("QRCode")
	}
	if opts.FolderID != nil {
		q = q.Where("p.folder_id", *opts.FolderID)
	} else if opts.Unfiled {
		q = q.WhereNull("p.folder_id")
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		q = q.WhereRaw("(p.name LIKE ? OR p.description LIKE ?)", pattern, pattern)
	}

	return database.Paginate(q, ctx, opts.Page, opts.PageSize)
}

// UpdateProduct edits a product's name and/or description. The slug never
// changes; the QR record is resynchronized inside the same transaction.
func (ps *ProductService) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, req *structs.ProductUpdateRequest) (*tables.Product, error) {
	product, err := ps.GetProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = lib.NormalizeDescription(*req.Description)
	}
	product.UpdatedAt = time.Now()

	updated, err := database.TransactionWithResult(ctx, ps.db, func(ctx context.Context, tx bun.Tx) (*tables.Product, error) {
		if _, err := database.QueryTx[tables.Product](tx).
			Where("id", product.ID).
			Update(ctx, map[string]any{
				"name":        product.Name,
				"description": product.Description,
				"updated_at":  product.UpdatedAt,
			}); err != nil {
			return nil, lib.MapDBError(err)
		}

		qr, err := ps.provisionQR(ctx, tx, product)
		if err != nil {
			return nil, err
		}
		product.QRCode = qr

		return product, nil
	})
	if err != nil {
		return nil, err
	}

	ps.invalidateListen(product.Slug)
	return updated, nil
}

// DeleteProduct removes a product and, through ON DELETE CASCADE, its QR
// record. Scanning the printed code afterwards is a 404 by design.
func (ps *ProductService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := ps.GetProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if _, err := database.Query[tables.Product](ps.db).
		Where("id", product.ID).
		Delete(ctx); err != nil {
		return err
	}

	ps.invalidateListen(product.Slug)
	return nil
}

// MoveToFolder reassigns a product to a folder, or to no folder at all. Both
// the product and the target folder must belong to the actor.
func (ps *ProductService) MoveToFolder(ctx context.Context, ownerID uuid.UUID, req *structs.MoveProductRequest) (*tables.Product, error) {
	product, err := ps.GetProduct(ctx, ownerID, req.ProductID)
	if err != nil {
		return nil, err
	}

	if req.FolderID != nil {
		if err := ps.checkFolderOwnership(ctx, ownerID, *req.FolderID); err != nil {
			return nil, err
		}
	}

	product.FolderID = req.FolderID
	product.UpdatedAt = time.Now()

	if _, err := database.Query[tables.Product](ps.db).
		Where("id", product.ID).
		Update(ctx, map[string]any{
			"folder_id":  req.FolderID,
			"updated_at": product.UpdatedAt,
		}); err != nil {
		return nil, err
	}

	return product, nil
}

// GetListenPayload is the public read behind a QR scan. No ownership check:
// knowing the slug is the only credential. Cache-aside on the slug.
func (ps *ProductService) GetListenPayload(ctx context.Context, slug string) (*structs.ListenPayload, error) {
	if ps.cache != nil {
		if payload, err := ps.cache.GetListenPayload(slug); err == nil && payload != nil {
			return payload, nil
		}
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("p.slug", slug).
		First(ctx)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	payload := &structs.ListenPayload{
		Name:        product.Name,
		Description: product.Description,
	}

	if ps.cache != nil {
		if err := ps.cache.SetListenPayload(slug, payload); err != nil {
			ps.logger.Warn("Failed to cache listen payload", gecho.Field("slug", slug), gecho.Field("error", err))
		}
	}

	return payload, nil
}

// ListAll returns every product with its QR code. Used by the static
// exporter and the admin listing.
func (ps *ProductService) ListAll(ctx context.Context) ([]tables.Product, error) {
	return database.Query[tables.Product](ps.db).
		With("QRCode").
		OrderBy("p.created_at", database.ASC).
		All(ctx)
}

func (ps *ProductService) checkFolderOwnership(ctx context.Context, ownerID, folderID uuid.UUID) error {
	folder, err := database.FindByID[tables.Folder](ps.db, ctx, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return lib.ErrNotFound
	}
	return lib.RequireOwner(folder.OwnerID, ownerID)
}

func (ps *ProductService) invalidateListen(slug string) {
	if ps.cache == nil {
		return
	}
	if err := ps.cache.InvalidateListenPayload(slug); err != nil {
		ps.logger.Warn("Failed to invalidate listen cache", gecho.Field("slug", slug), gecho.Field("error", err))
	}
}
