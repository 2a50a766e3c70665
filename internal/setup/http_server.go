package setup

import (
	"context"
	nethttp "net/http"

	"github.com/memehub/memehub/internal/config"
	"github.com/memehub/memehub/internal/http"
	"github.com/memehub/memehub/internal/http/handler/api"
	"github.com/memehub/memehub/internal/http/handler/health"
	"github.com/memehub/memehub/internal/http/handler/metrics"
	"github.com/memehub/memehub/internal/http/handler/webui"
	commonComp "github.com/memehub/memehub/internal/http/handler/webui/common/component"
	"github.com/memehub/memehub/internal/http/middleware/authn"
	"github.com/memehub/memehub/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	sessionHandler, err := getSessionHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session handler from config")
	}

	authnMiddleware := authn.Middleware(sessionHandler)

	feedService, err := getFeedServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure feed service from config")
	}

	accountService, err := getAccountServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure account service from config")
	}

	catalog, err := getTemplateCatalogFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure template catalog from config")
	}

	notifier, err := getNotifierFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure notifier from config")
	}

	ads := commonComp.AdsVModel{}
	if conf.Analytics.Enabled {
		ads.AnalyticsID = conf.Analytics.MeasurementID
	}
	if conf.Ads.Enabled {
		ads.AdsClientID = conf.Ads.ClientID
		ads.AdsSlotID = conf.Ads.SlotID
	}

	apiHandler := api.NewHandler(feedService, accountService, catalog, sessionHandler)
	webuiHandler := webui.NewHandler(feedService, catalog, notifier, ads)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler

	var authHandler nethttp.Handler = sessionHandler
	if conf.HTTP.RateLimit.Enabled {
		rateLimitMiddleware := ratelimit.Middleware(
			conf.HTTP.RateLimit.TrustHeaders,
			conf.HTTP.RateLimit.Interval,
			conf.HTTP.RateLimit.MaxBurst,
			conf.HTTP.RateLimit.CacheSize,
			conf.HTTP.RateLimit.TTL,
		)
		authHandler = rateLimitMiddleware(authHandler)
	}

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/auth/", authnMiddleware(authHandler)),
		http.WithMount("/api/v1/", corsMiddleware(authnMiddleware(apiHandler))),
		http.WithMount("/health/", health.NewHandler()),
		http.WithMount("/metrics/", metrics.NewHandler()),
		http.WithMount("/", authnMiddleware(webuiHandler)),
	}

	server := http.NewServer(options...)

	return server, nil
}
