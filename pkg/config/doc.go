// Package config loads typed configuration structs from environment
// variables using caarlos0/env struct tags. A .env file in the working
// directory is read once, on first use, through joho/godotenv; variables that
// are already set take precedence over the file.
//
//	type Config struct {
//	    ShippingFee string `env:"SHIPPING_FEE" envDefault:"5.00"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load caches the parsed value per type so every package that asks for the
// same struct sees the same values. Parse skips the cache.
package config
