package services

import (
	"context"
	"regexp"
	"strings"
	"talktag_server/database"
	"talktag_server/lib"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// placeholderPattern matches [placeholder] markers in template content.
var placeholderPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// TemplateService manages the shared library of description templates.
// Templates are global: every account sees the same library and rendering
// them produces a draft description, never a product.
type TemplateService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewTemplateService(logger *gecho.Logger, db *database.DB) *TemplateService {
	return &TemplateService{
		logger: logger,
		db:     db,
	}
}

func (ts *TemplateService) CreateTemplate(ctx context.Context, req *structs.TemplateRequest) (*tables.Template, error) {
	template := &tables.Template{
		ID:        uuid.New(),
		Name:      req.Name,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if _, err := database.Create(ts.db, ctx, template); err != nil {
		return nil, lib.MapDBError(err)
	}

	return template, nil
}

func (ts *TemplateService) ListTemplates(ctx context.Context) ([]tables.Template, error) {
	return database.Query[tables.Template](ts.db).
		OrderBy("name", database.ASC).
		All(ctx)
}

func (ts *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*tables.Template, error) {
	template, err := database.FindByID[tables.Template](ts.db, ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, lib.ErrNotFound
	}
	return template, nil
}

func (ts *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if _, err := ts.GetTemplate(ctx, id); err != nil {
		return err
	}
	_, err := database.DeleteByID[tables.Template](ts.db, ctx, id)
	return err
}

// Placeholders lists the distinct [marker] names in content, in order of
// first appearance.
func Placeholders(content string) []string {
	seen := map[string]bool{}
	var names []string

	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// Render substitutes values into a template's [placeholder] markers. Markers
// without a value are left in place so the user can spot what is missing.
func Render(content string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(marker string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(marker, "["), "]")
		if value, ok := values[name]; ok {
			return value
		}
		return marker
	})
}
