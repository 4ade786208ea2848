package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Product is a text description a business user publishes behind a QR code.
// The slug is the product's public identity: unique, URL-safe and immutable
// once assigned.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	OwnerID       uuid.UUID  `bun:"owner_id,type:uuid,notnull" json:"owner_id"`
	FolderID      *uuid.UUID `bun:"folder_id,type:uuid" json:"folder_id,omitempty"` // null when unfiled; folder delete sets null
	Name          string     `bun:"name,notnull" json:"name"`
	Description   string     `bun:"description,notnull" json:"description"` // sanitized text read aloud on the listen page
	Slug          string     `bun:"slug,unique,notnull" json:"slug"`
	CreatedAt     time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,notnull,default:now()" json:"updated_at"`
	QRCode        *QRCode    `bun:"rel:has-one,join:id=product_id" json:"qr_code,omitempty"`
}

// QRCode is the one-to-one companion of a Product. The row lives and dies
// with its product (ON DELETE CASCADE). PublicURL is derived state and is
// recomputed on every save; ImageData is generated once and then kept.
type QRCode struct {
	bun.BaseModel `bun:"table:qr_codes,alias:qr"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	ProductID     uuid.UUID `bun:"product_id,type:uuid,unique,notnull" json:"product_id"`
	PublicURL     string    `bun:"public_url,notnull" json:"public_url"`
	ImageData     string    `bun:"image_data" json:"image_data,omitempty"` // data:image/png;base64,... payload
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// Folder groups products on the dashboard. Purely organizational: deleting a
// folder never deletes the products inside it.
type Folder struct {
	bun.BaseModel `bun:"table:folders,alias:f"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	OwnerID       uuid.UUID `bun:"owner_id,type:uuid,notnull" json:"owner_id"`
	Name          string    `bun:"name,notnull" json:"name"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// Template is a reusable description with [placeholder] markers.
type Template struct {
	bun.BaseModel `bun:"table:templates,alias:t"`
	ID            uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Content       string    `bun:"content,notnull" json:"content"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
