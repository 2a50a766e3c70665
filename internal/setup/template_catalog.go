package setup

import (
	"context"

	"github.com/memehub/memehub/internal/adapter/memory"
	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/core/port"
)

var getTemplateCatalogFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.TemplateCatalog, error) {
	return memory.NewTemplateCatalog(memory.DefaultTemplates()...), nil
})
