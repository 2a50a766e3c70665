package setup

import (
	"context"

	gormAdapter "github.com/memehub/memehub/internal/adapter/gorm"
	"github.com/memehub/memehub/internal/config"
	"github.com/pkg/errors"
)

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewStore(db), nil
})
