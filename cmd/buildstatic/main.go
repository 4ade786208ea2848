package main

import (
	"context"
	"flag"
	"talktag_server/config"
	"talktag_server/database"
	"talktag_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

// buildstatic renders the whole site to plain files: the landing page, the
// scanner and one listen page per product. The output can be served by any
// static file host.
func main() {
	outDir := flag.String("out", "", "output directory (defaults to EXPORT_OUTPUT_DIR)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.GetConfig()
	logger := config.InitializeLogger()

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}
	defer database.CloseInstance()

	db := database.GetInstance()

	// No cache: the export reads straight from the database.
	productService := services.NewProductService(logger, cfg, db, nil)
	exportService := services.NewExportService(logger, cfg, productService)

	if err := exportService.BuildStatic(context.Background(), *outDir); err != nil {
		logger.Fatal("Static export failed", gecho.Field("error", err))
	}

	logger.Info("Static site exported", gecho.Field("out", *outDir))
}
