package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration
// struct based on `env` field tags. The first call also loads a .env
// file from the working directory when one exists, so development
// setups and deployed environments feed the same code path.
//
// Example:
//
//	type AppConfig struct {
//		Addr       string `env:"ADDR" envDefault:":8080"`
//		SigningKey string `env:"SESSION_SIGNING_KEY,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the named .env files into the process environment and
// then parses it into the struct. Unlike Load, a missing file is an
// error: explicitly naming a file asserts that it exists.
func LoadEnv[T any](v *T, filenames ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoadEnv works like LoadEnv but panics if configuration loading fails.
func MustLoadEnv[T any](v *T, filenames ...string) {
	if err := LoadEnv(v, filenames...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
