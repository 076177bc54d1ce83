// Command storefront serves the storefront's auth forms and checkout.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/storefront/pkg/clientip"
	"github.com/dmitrymomot/storefront/pkg/config"
	"github.com/dmitrymomot/storefront/pkg/httpserver"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/ratelimiter"
	"github.com/dmitrymomot/storefront/pkg/requestid"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LogExtractor, clientip.LogExtractor),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("storefront stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	store, cleanup, err := openCartStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info("starting storefront",
		slog.String("cart_backend", cfg.CartBackend),
		slog.String("shipping", cfg.Shipping.Decimal()),
	)

	limits := ratelimiter.NewMemoryStore()
	defer limits.Close()

	router, err := newRouter(cfg, log, store, limits)
	if err != nil {
		return err
	}

	return httpserver.New(cfg.HTTP, log).Run(ctx, router)
}
