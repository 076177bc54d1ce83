package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"CFG_TEST_DEFAULT_NAME" envDefault:"storefront"`
	Port    int    `env:"CFG_TEST_DEFAULT_PORT" envDefault:"8080"`
	Enabled bool   `env:"CFG_TEST_DEFAULT_ENABLED" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type parsedConfig struct {
	Value string `env:"CFG_TEST_PARSED"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "storefront", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.Enabled)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))

	t.Setenv("CFG_TEST_CACHED", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)
}

func TestLoad_Errors(t *testing.T) {
	assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestParse_SkipsCache(t *testing.T) {
	t.Setenv("CFG_TEST_PARSED", "one")
	var a parsedConfig
	require.NoError(t, config.Parse(&a))
	assert.Equal(t, "one", a.Value)

	t.Setenv("CFG_TEST_PARSED", "two")
	var b parsedConfig
	require.NoError(t, config.Parse(&b))
	assert.Equal(t, "two", b.Value)
}
