package setup

import (
	"context"

	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/core/service"
	"github.com/pkg/errors"
)

var getAccountServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.AccountService, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	return service.NewAccountService(store), nil
})
