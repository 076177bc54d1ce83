package main

import (
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/clientip"
	"github.com/dmitrymomot/storefront/pkg/httpserver"
	"github.com/dmitrymomot/storefront/pkg/ratelimiter"
	"github.com/dmitrymomot/storefront/pkg/redis"
)

const (
	cartBackendMemory = "memory"
	cartBackendRedis  = "redis"
)

type appConfig struct {
	Environment string     `env:"APP_ENV" envDefault:"development"`
	ServiceName string     `env:"APP_NAME" envDefault:"storefront"`
	CartBackend string     `env:"CART_BACKEND" envDefault:"memory"`
	Shipping    cart.Money `env:"CHECKOUT_SHIPPING" envDefault:"5.00"`
	QRSize      int        `env:"INVOICE_QR_SIZE" envDefault:"128"`

	HTTP      httpserver.Config
	Redis     redis.Config
	RateLimit ratelimiter.Config
	ClientIP  clientip.Config
}
