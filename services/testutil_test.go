package services

import (
	"context"
	"database/sql"
	"talktag_server/database"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// The test schema mirrors the production migrations: the slug is unique,
// qr_codes rows die with their product and deleting a folder unfiles its
// products.
var testSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		last_login TIMESTAMP,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE folders (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE products (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		folder_id TEXT REFERENCES folders(id) ON DELETE SET NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE qr_codes (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL UNIQUE REFERENCES products(id) ON DELETE CASCADE,
		public_url TEXT NOT NULL,
		image_data TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive and makes
	// the PRAGMA below stick.
	sqldb.SetMaxOpenConns(1)

	db := database.New(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	for _, stmt := range testSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

func testConfig() *structs.Config {
	return &structs.Config{
		Site: &structs.SiteConfig{Domain: "example.com"},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test-secret",
			AccessTokenExpiry: 15 * time.Minute,
			BlacklistCacheTTL: time.Hour,
		},
		Cache: &structs.CacheConfig{ListenTTL: time.Minute},
	}
}

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
}

func createTestUser(t *testing.T, db *database.DB, email string) uuid.UUID {
	t.Helper()

	now := time.Now()
	user := &tables.User{
		Id:           uuid.New(),
		Username:     email,
		Email:        email,
		PasswordHash: "x",
		Role:         "user",
		LastLogin:    now,
		CreatedAt:    now,
	}
	if _, err := database.Query[tables.User](db).Insert(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user.Id
}

// newTestProductService wires a product service against sqlite with caching
// disabled.
func newTestProductService(t *testing.T, db *database.DB) *ProductService {
	t.Helper()
	return NewProductService(testLogger(), testConfig(), db, nil)
}
