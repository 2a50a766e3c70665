package port

import (
	"context"

	"github.com/memehub/memehub/internal/core/model"
)

type TemplateCatalog interface {
	ListTemplates(ctx context.Context) ([]model.MemeTemplate, error)

	// GetTemplateByID finds a template by its ID, or returns ErrNotFound
	GetTemplateByID(ctx context.Context, id model.TemplateID) (model.MemeTemplate, error)
}
