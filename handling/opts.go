package handling

import (
	"net/http"
	"strconv"
	"talktag_server/structs"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*structs.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &structs.ProductListOptions{}, nil
	}

	opts := &structs.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.Search = searchTerm
	}

	// Folder filters; unfiled=true wins over folder_id
	if folderID := query.Get("folder_id"); folderID != "" {
		id, err := uuid.Parse(folderID)
		if err != nil {
			return nil, err
		}
		opts.FolderID = &id
	}

	if unfiled := query.Get("unfiled"); unfiled != "" {
		if valBool, err = strconv.ParseBool(unfiled); err != nil {
			return nil, err
		}
		opts.Unfiled = valBool
	}

	if includeQR := query.Get("include_qr"); includeQR != "" {
		if valBool, err = strconv.ParseBool(includeQR); err != nil {
			return nil, err
		}
		opts.IncludeQR = valBool
	}

	return opts, nil
}
