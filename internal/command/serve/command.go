package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the memehub web server",
		Action: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			slog.DebugContext(ctx.Context, "using configuration", slog.Any("config", conf))

			serverCtx, cancel := context.WithCancel(ctx.Context)
			defer cancel()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)

			go func() {
				slog.InfoContext(serverCtx, "use ctrl+c to interrupt")
				<-sig
				cancel()
			}()

			server, err := setup.NewHTTPServerFromConfig(serverCtx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup http server")
			}

			slog.InfoContext(serverCtx, "starting server", slog.Any("address", conf.HTTP.Address))

			if err := server.Run(serverCtx); err != nil {
				return errors.Wrap(err, "could not run server")
			}

			return nil
		},
	}
}
