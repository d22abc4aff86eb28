package config_test

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entityvalidator/pkg/config"
)

type defaultsConfig struct {
	Language string `env:"CFGTEST_LANGUAGE" envDefault:"en"`
	Retries  int    `env:"CFGTEST_RETRIES" envDefault:"3"`
	Enabled  bool   `env:"CFGTEST_ENABLED" envDefault:"true"`
}

type successConfig struct {
	Language string `env:"CFGTEST_SUCCESS_LANGUAGE" envDefault:"en"`
	Retries  int    `env:"CFGTEST_SUCCESS_RETRIES"`
}

type cachedConfig struct {
	Value string `env:"CFGTEST_CACHED" envDefault:"default"`
}

type requiredConfig struct {
	Required string `env:"CFGTEST_REQUIRED,required"`
}

type prefixedConfig struct {
	Language string `env:"LANGUAGE" envDefault:"en"`
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
}

type fileConfig struct {
	String string   `env:"CFGTEST_FILE_STRING"`
	List   []string `env:"CFGTEST_FILE_LIST" envSeparator:","`
	Quoted string   `env:"CFGTEST_FILE_QUOTED"`
}

func TestLoad_Success(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_SUCCESS_LANGUAGE", "fr")
	t.Setenv("CFGTEST_SUCCESS_RETRIES", "7")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fr", cfg.Language)
	assert.Equal(t, 7, cfg.Retries)
}

func TestLoad_DefaultValues(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_LANGUAGE")
	os.Unsetenv("CFGTEST_RETRIES")
	os.Unsetenv("CFGTEST_ENABLED")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 3, cfg.Retries)
	assert.True(t, cfg.Enabled)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Run("failed parse is not cached", func(t *testing.T) {
		t.Setenv("CFGTEST_REQUIRED", "now-set")
		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "now-set", cfg.Required)
	})
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("CFGTEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value, "cached value should be returned")

	config.ResetCache()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_CACHED", "shared")

	var wg sync.WaitGroup
	results := make([]cachedConfig, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = config.Load(&results[i])
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i].Value)
	}
}

func TestLoad_WithPrefix(t *testing.T) {
	config.ResetCache()
	t.Setenv("CFGTEST_PFX_LANGUAGE", "de")

	var cfg prefixedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_PFX_")))
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "UTC", cfg.Timezone)

	t.Run("prefix is part of the cache key", func(t *testing.T) {
		var other prefixedConfig
		require.NoError(t, config.Load(&other, config.WithPrefix("CFGTEST_OTHER_")))
		assert.Equal(t, "en", other.Language)
	})
}

func TestLoad_WithEnvironment(t *testing.T) {
	var cfg prefixedConfig
	err := config.Load(&cfg,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{"APP_TIMEZONE": "Europe/Paris"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "Europe/Paris", cfg.Timezone)

	var again prefixedConfig
	err = config.Load(&again,
		config.WithPrefix("APP_"),
		config.WithEnvironment(map[string]string{"APP_TIMEZONE": "Asia/Tokyo"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", again.Timezone, "explicit environments bypass the cache")
}

func TestLoad_WithEnvFiles(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_FILE_STRING")
	os.Unsetenv("CFGTEST_FILE_LIST")
	os.Unsetenv("CFGTEST_FILE_QUOTED")
	t.Cleanup(func() {
		os.Unsetenv("CFGTEST_FILE_STRING")
		os.Unsetenv("CFGTEST_FILE_LIST")
		os.Unsetenv("CFGTEST_FILE_QUOTED")
	})

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles("testdata/.env.test")))
	assert.Equal(t, "from_file", cfg.String)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CFGTEST_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg defaultsConfig
		config.MustLoad(&cfg)
	})
}
