package setup

import (
	"context"

	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/http/flash"
	"github.com/pkg/errors"
)

var getNotifierFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*flash.Notifier, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	return flash.NewNotifier(sessionStore), nil
})
