package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/sessionkit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigReload struct {
	Value string `env:"TEST_RELOAD_VALUE" envDefault:"default"`
}

type TestConfigFromFile struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error with valid environment variables")
	assert.Equal(t, "test_value", cfg.TestString, "TestString should match environment variable")
	assert.Equal(t, 100, cfg.TestInt, "TestInt should match environment variable")
	assert.Equal(t, false, cfg.TestBool, "TestBool should match environment variable")
}

func TestLoad_DefaultValues(t *testing.T) {
	// Clean environment variables to ensure defaults are used
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err, "Load should not return an error when using default values")
	assert.Equal(t, "default_value", cfg.TestString, "TestString should use default value")
	assert.Equal(t, 42, cfg.TestInt, "TestInt should use default value")
	assert.Equal(t, true, cfg.TestBool, "TestBool should use default value")
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err, "Load should return an error when a required value is missing")
	assert.True(t, errors.Is(err, config.ErrParsingConfig), "Error should be ErrParsingConfig")
}

func TestLoad_Reparses(t *testing.T) {
	t.Setenv("TEST_RELOAD_VALUE", "first_value")

	var firstConfig TestConfigReload
	require.NoError(t, config.Load(&firstConfig), "First load should not return an error")
	assert.Equal(t, "first_value", firstConfig.Value)

	t.Setenv("TEST_RELOAD_VALUE", "second_value")

	var secondConfig TestConfigReload
	require.NoError(t, config.Load(&secondConfig), "Second load should not return an error")
	assert.Equal(t, "second_value", secondConfig.Value,
		"Load should re-read the environment on every call")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess = nil
	err := config.Load(cfg)

	require.Error(t, err, "Load should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer, "Error should be ErrNilPointer")
}

func TestLoadEnv_File(t *testing.T) {
	os.Unsetenv("TEST_ENV_FILE_VALUE")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_ENV_FILE_VALUE=from_file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_VALUE") })

	var cfg TestConfigFromFile
	err := config.LoadEnv(&cfg, envFile)

	require.NoError(t, err, "LoadEnv should not return an error for an existing file")
	assert.Equal(t, "from_file", cfg.Value, "Value should come from the env file")
}

func TestLoadEnv_MissingFile(t *testing.T) {
	var cfg TestConfigFromFile
	err := config.LoadEnv(&cfg, filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err, "LoadEnv should return an error for a missing file")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile, "Error should be ErrLoadingEnvFile")
}

func TestLoadEnv_NilPointer(t *testing.T) {
	var cfg *TestConfigFromFile = nil
	err := config.LoadEnv(cfg)

	require.Error(t, err, "LoadEnv should return an error when given a nil pointer")
	assert.ErrorIs(t, err, config.ErrNilPointer, "Error should be ErrNilPointer")
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	}, "MustLoad should panic when loading fails")
}

func TestMustLoadEnv_Panics(t *testing.T) {
	assert.Panics(t, func() {
		var cfg TestConfigFromFile
		config.MustLoadEnv(&cfg, filepath.Join(t.TempDir(), "missing.env"))
	}, "MustLoadEnv should panic when the file is missing")
}
