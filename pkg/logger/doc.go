// Package logger builds *slog.Logger instances for the application.
//
// New creates a logger configured through functional options: output format
// (text or JSON), level, static attributes and ContextExtractor callbacks that
// pull request-scoped values (the chi request id) out of the context each
// time a record is handled. WithEnvironment applies the development or
// production preset in one call.
//
// Attribute helpers in attr.go (Error, Username, ShopID, Component, ...) keep
// key names consistent across packages. AccessLog is a net/http middleware
// that records method, path, status, size and latency for every request.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(config.Production, "coffeeshops"),
//		logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	slog.SetDefault(log)
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID, logger.AccessLog(log))
package logger
