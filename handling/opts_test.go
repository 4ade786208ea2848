package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestParseProductListOptions(t *testing.T) {
	folderID := uuid.New()

	r := httptest.NewRequest("GET", "/products?page=2&page_size=25&search=jam&folder_id="+folderID.String()+"&include_qr=true", nil)
	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("ParseProductListOptions: %v", err)
	}

	if opts.Page != 2 || opts.PageSize != 25 {
		t.Errorf("pagination = %d/%d", opts.Page, opts.PageSize)
	}
	if opts.Search != "jam" {
		t.Errorf("search = %q", opts.Search)
	}
	if opts.FolderID == nil || *opts.FolderID != folderID {
		t.Errorf("folder id not parsed")
	}
	if !opts.IncludeQR {
		t.Error("include_qr not parsed")
	}
}

func TestParseProductListOptionsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/products", nil)
	opts, err := ParseProductListOptions(r)
	if err != nil {
		t.Fatalf("ParseProductListOptions: %v", err)
	}
	if opts.Page != 0 || opts.PageSize != 0 || opts.Search != "" || opts.FolderID != nil || opts.Unfiled || opts.IncludeQR {
		t.Errorf("expected zero options, got %+v", opts)
	}
}

func TestParseProductListOptionsInvalid(t *testing.T) {
	cases := []string{
		"/products?page=abc",
		"/products?page_size=abc",
		"/products?folder_id=not-a-uuid",
		"/products?unfiled=maybe",
		"/products?include_qr=12x",
	}
	for _, url := range cases {
		r := httptest.NewRequest("GET", url, nil)
		if _, err := ParseProductListOptions(r); err == nil {
			t.Errorf("expected error for %s", url)
		}
	}
}
