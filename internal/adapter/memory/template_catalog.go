package memory

import (
	"context"

	"github.com/memehub/memehub/internal/core/model"
	"github.com/memehub/memehub/internal/core/port"
	"github.com/pkg/errors"
)

// TemplateCatalog serves the static meme template list the editor loads.
type TemplateCatalog struct {
	templates []model.MemeTemplate
	byID      map[model.TemplateID]model.MemeTemplate
}

// ListTemplates implements port.TemplateCatalog.
func (c *TemplateCatalog) ListTemplates(ctx context.Context) ([]model.MemeTemplate, error) {
	templates := make([]model.MemeTemplate, len(c.templates))
	copy(templates, c.templates)

	return templates, nil
}

// GetTemplateByID implements port.TemplateCatalog.
func (c *TemplateCatalog) GetTemplateByID(ctx context.Context, id model.TemplateID) (model.MemeTemplate, error) {
	template, exists := c.byID[id]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return template, nil
}

func NewTemplateCatalog(templates ...model.MemeTemplate) *TemplateCatalog {
	byID := make(map[model.TemplateID]model.MemeTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID()] = t
	}

	return &TemplateCatalog{
		templates: templates,
		byID:      byID,
	}
}

// DefaultTemplates is the built-in catalog.
func DefaultTemplates() []model.MemeTemplate {
	return []model.MemeTemplate{
		model.NewReadOnlyMemeTemplate("drake", "Drake Hotline Bling", "https://i.imgflip.com/30b1gx.jpg", 2),
		model.NewReadOnlyMemeTemplate("distracted-boyfriend", "Distracted Boyfriend", "https://i.imgflip.com/1ur9b0.jpg", 3),
		model.NewReadOnlyMemeTemplate("two-buttons", "Two Buttons", "https://i.imgflip.com/1g8my4.jpg", 3),
		model.NewReadOnlyMemeTemplate("expanding-brain", "Expanding Brain", "https://i.imgflip.com/1jwhww.jpg", 4),
		model.NewReadOnlyMemeTemplate("change-my-mind", "Change My Mind", "https://i.imgflip.com/24y43o.jpg", 2),
		model.NewReadOnlyMemeTemplate("one-does-not-simply", "One Does Not Simply", "https://i.imgflip.com/1bij.jpg", 2),
	}
}

var _ port.TemplateCatalog = &TemplateCatalog{}
