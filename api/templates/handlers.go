package templates

import (
	"net/http"
	"talktag_server/lib"
	"talktag_server/services"
	"talktag_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ListTemplates handles GET /templates. Each template is returned with its
// extracted placeholder names so the front-end can build a fill-in form.
func (trm *TemplateRoutesManager) ListTemplates(w http.ResponseWriter, r *http.Request) {
	list, err := trm.templateService.ListTemplates(r.Context())
	if err != nil {
		trm.respondError(w, err, "list")
		return
	}

	type templateView struct {
		ID           uuid.UUID `json:"id"`
		Name         string    `json:"name"`
		Content      string    `json:"content"`
		Placeholders []string  `json:"placeholders"`
	}

	views := make([]templateView, 0, len(list))
	for _, t := range list {
		views = append(views, templateView{
			ID:           t.ID,
			Name:         t.Name,
			Content:      t.Content,
			Placeholders: services.Placeholders(t.Content),
		})
	}

	gecho.Success(w,
		gecho.WithData(views),
		gecho.Send(),
	)
}

// CreateTemplate handles POST /templates.
func (trm *TemplateRoutesManager) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.TemplateRequest](r)
	if err != nil {
		trm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the template and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	template, err := trm.templateService.CreateTemplate(r.Context(), body)
	if err != nil {
		trm.respondError(w, err, "create")
		return
	}

	gecho.Success(w,
		gecho.WithData(template),
		gecho.Send(),
	)
}

// UseTemplate handles POST /templates/{id}/use. It fills the template's
// placeholders with the supplied values and returns a description draft;
// nothing is persisted until the user saves the product.
func (trm *TemplateRoutesManager) UseTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid template ID"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UseTemplateRequest](r)
	if err != nil {
		trm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the placeholder values and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	template, err := trm.templateService.GetTemplate(r.Context(), templateID)
	if err != nil {
		trm.respondError(w, err, "use")
		return
	}

	draft := services.Render(template.Content, body.Values)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"draft":        draft,
			"placeholders": services.Placeholders(template.Content),
		}),
		gecho.Send(),
	)
}

// DeleteTemplate handles DELETE /templates/{id}.
func (trm *TemplateRoutesManager) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID, err := lib.UUIDParam(r, "id")
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid template ID"), gecho.Send())
		return
	}

	if err := trm.templateService.DeleteTemplate(r.Context(), templateID); err != nil {
		trm.respondError(w, err, "delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Template deleted"),
		gecho.Send(),
	)
}
