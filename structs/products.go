package structs

import "github.com/google/uuid"

// ProductRequest is the payload for creating a product. The description is
// accepted raw; it passes through the sanitizer before it is persisted.
type ProductRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"required"`
	FolderID    *uuid.UUID `json:"folder_id,omitempty"`
}

// ProductUpdateRequest carries optional fields for an edit. Slug and owner are
// never part of an update.
type ProductUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
}

// MoveProductRequest is the drag-and-drop payload for moving a product into a
// folder. A null folder_id moves the product out of any folder.
type MoveProductRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	FolderID  *uuid.UUID `json:"folder_id"`
}

type FolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type TemplateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Content string `json:"content" validate:"required"`
}

// UseTemplateRequest fills a template's [placeholder] markers with concrete
// values to produce a draft product description.
type UseTemplateRequest struct {
	Values map[string]string `json:"values"`
}

// ProductListOptions are the parsed query parameters of a dashboard listing.
type ProductListOptions struct {
	Page      int
	PageSize  int
	Search    string
	FolderID  *uuid.UUID // filter to one folder
	Unfiled   bool       // only products outside any folder; ignored when FolderID is set
	IncludeQR bool
}

// ListenPayload is the public response for a scanned QR code: everything the
// scanner front-end needs to read a product aloud.
type ListenPayload struct {
	Name        string `json:"name"`
	Description string `json:"text_description"`
}
