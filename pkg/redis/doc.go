// Package redis provides helpers for connecting to a Redis server.
//
// The package wraps the go-redis client and adds a retrying Connect and a
// health-check helper for readiness probes. It is used by the Redis session
// store; deployments that keep sessions in memory never dial Redis.
//
// # Usage
//
//	cfg := redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  5 * time.Second,
//		ConnectTimeout: 30 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer client.Close()
//
//	checker := redis.Healthcheck(client)
//
// # Errors
//
// Sentinel errors (ErrNotReady and friends) wrap the underlying go-redis
// errors using errors.Join, so they can be matched with errors.Is.
package redis
