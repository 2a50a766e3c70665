package setup

import (
	"context"

	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/http/middleware/authn/session"
	"github.com/pkg/errors"
)

var getSessionHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	accounts, err := getAccountServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure account service from config")
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	notifier, err := getNotifierFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure notifier from config")
	}

	return session.NewHandler(sessionStore, accounts, store, notifier), nil
})
