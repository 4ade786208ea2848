package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"talktag_server/structs"
	"talktag_server/templates"

	"github.com/MonkyMars/gecho"
)

// ExportService renders the public pages to plain files so the scanner site
// can be served from static hosting. Each product gets its own
// listen/<slug>/index.html; the QR images are already inline data URIs, so
// the export needs no asset pipeline.
type ExportService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	productService *ProductService
}

func NewExportService(logger *gecho.Logger, cfg *structs.Config, productService *ProductService) *ExportService {
	return &ExportService{
		logger:         logger,
		cfg:            cfg,
		productService: productService,
	}
}

// BuildStatic writes the static site into outDir. The directory is recreated
// from scratch on every run so deleted products disappear from the output.
func (es *ExportService) BuildStatic(ctx context.Context, outDir string) error {
	if outDir == "" {
		outDir = es.cfg.Export.OutputDir
	}

	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("failed to clean output dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := es.writePage(filepath.Join(outDir, "index.html"), "home.html", nil); err != nil {
		return err
	}
	if err := es.writePage(filepath.Join(outDir, "scan", "index.html"), "scan.html", nil); err != nil {
		return err
	}

	products, err := es.productService.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products for export: %w", err)
	}

	for i := range products {
		product := &products[i]

		// Repair products that predate QR provisioning.
		if product.QRCode == nil || product.QRCode.ImageData == "" {
			qr, err := es.productService.EnsureQRProvisioned(ctx, product.ID)
			if err != nil {
				return fmt.Errorf("failed to provision qr for %s: %w", product.Slug, err)
			}
			product.QRCode = qr
		}

		page := filepath.Join(outDir, "listen", product.Slug, "index.html")
		data := &templates.ListenPage{
			Name:        product.Name,
			Description: product.Description,
		}
		if err := es.writePage(page, "listen.html", data); err != nil {
			return err
		}
	}

	es.logger.Info("Static site exported",
		gecho.Field("output_dir", outDir),
		gecho.Field("products", len(products)),
	)

	return nil
}

func (es *ExportService) writePage(path, name string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := templates.Render(f, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}
