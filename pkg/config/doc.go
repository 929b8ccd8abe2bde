// Package config provides a type-safe, generic way to load application
// configuration from environment variables.
//
// It wraps popular libraries `github.com/joho/godotenv` and
// `github.com/caarlos0/env/v11` to deliver a convenient API that:
//
//   - Loads values from the default `.env` in the current working
//     directory or from explicitly named `.env` files.
//   - Parses the environment into any Go struct using field tags.
//   - Exposes helpers that panic on failure (`MustLoad`, `MustLoadEnv`) for
//     scenarios where configuration is critical.
//
// # Usage
//
// First, create a struct describing your configuration and annotate its fields
// with `env` tags:
//
//	type AppConfig struct {
//	    Addr       string `env:"ADDR" envDefault:":8080"`
//	    SigningKey string `env:"SESSION_SIGNING_KEY,required"`
//	}
//
// Then populate the struct (the default `.env` file is picked up
// automatically when present):
//
//	import "github.com/sessionkit/sessionkit/pkg/config"
//
//	func main() {
//	    var cfg AppConfig
//	    if err := config.Load(&cfg); err != nil {
//	        log.Fatalf("parsing env: %v", err)
//	    }
//	}
//
// To read specific files instead, use LoadEnv:
//
//	var cfg AppConfig
//	if err := config.LoadEnv(&cfg, "./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a named .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`LoadEnv`.
//
// # See Also
//
//   - https://github.com/joho/godotenv – .env file loader.
//   - https://github.com/caarlos0/env – environment parser.
package config
