// Package httpserver runs the site's HTTP server with timeouts, graceful
// shutdown and health-check handlers.
//
// Run binds the listener, closes Ready and serves until the context is
// cancelled, then gives in-flight requests ShutdownTimeout to finish. Signal
// handling belongs to the caller (signal.NotifyContext).
//
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(client)))
//
//	return httpserver.NewFromConfig(cfg, httpserver.WithLogger(log)).Run(ctx, r)
package httpserver
