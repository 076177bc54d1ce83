package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/storefront/handler"
	"github.com/dmitrymomot/storefront/modules/auth"
	"github.com/dmitrymomot/storefront/modules/checkout"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/clientip"
	"github.com/dmitrymomot/storefront/pkg/environment"
	"github.com/dmitrymomot/storefront/pkg/httpserver"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/ratelimiter"
	"github.com/dmitrymomot/storefront/pkg/redis"
	"github.com/dmitrymomot/storefront/pkg/requestid"
)

// cartBackend is a cart store that can report its health.
type cartBackend interface {
	cart.Store
	Healthcheck(ctx context.Context) error
}

// openCartStore returns the configured cart backend and a cleanup func.
func openCartStore(ctx context.Context, cfg appConfig, log *slog.Logger) (cartBackend, func(), error) {
	switch cfg.CartBackend {
	case cartBackendMemory:
		return cart.NewMemoryStore(), func() {}, nil
	case cartBackendRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}
		return cart.NewRedisStore(client, cart.WithTTL(cfg.Redis.CartTTL)), cleanup, nil
	}
	return nil, nil, fmt.Errorf("unknown cart backend %q", cfg.CartBackend)
}

// newRouter wires the middleware, the feature modules and health checks.
func newRouter(cfg appConfig, log *slog.Logger, store cartBackend, limits ratelimiter.Store) (http.Handler, error) {
	errHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})

	bucket, err := ratelimiter.NewBucket(limits, cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	ips, err := clientip.NewResolver(cfg.ClientIP)
	if err != nil {
		return nil, err
	}

	authSvc := auth.NewService(
		auth.WithLogger(log),
		auth.WithErrorHandler(errHandler),
		auth.WithSubmitter(auth.NewAccounts(auth.NewMemoryAccountStore())),
		auth.WithSubmitLimit(ratelimiter.Middleware(bucket, ips.Key, log)),
	)
	checkoutSvc := checkout.NewService(store,
		checkout.WithShipping(cfg.Shipping),
		checkout.WithQRSize(cfg.QRSize),
		checkout.WithLogger(log),
		checkout.WithErrorHandler(errHandler),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(ips.Middleware)
	r.Use(environment.Middleware(environment.Parse(cfg.Environment)))

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, store.Healthcheck))

	r.Mount("/auth", authSvc.Handle())
	r.Mount("/checkout", checkoutSvc.Handle())

	return r, nil
}
