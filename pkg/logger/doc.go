// Package logger provides a thin wrapper around Go's slog package
// adding functional options for configuration and helper attribute
// constructors.
//
// The package aims to standardise structured logging across services by
// exposing a single factory – New – that creates a *slog.Logger configured by
// a set of Option functions. These options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//
// Helper constructors such as Group, Error, Component and UserID live in
// attr.go and return commonly-used slog.Attr instances to keep attribute
// naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/sessionkit/sessionkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithDevelopment("auth-service"),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("listening",
//	        logger.Component("server"),
//	    )
//	}
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   • WithDevelopment / WithProduction – sensible defaults per environment.
//   • WithFormat – override output format.
//   • WithLevel – set a custom slog.Level.
//   • WithAttr – attach static attributes.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation succeeded", logger.Error(err))
//
// without an additional nil check.
package logger
