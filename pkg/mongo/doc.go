// Package mongo provides MongoDB connection management.
//
// New builds a single pooled *mongo.Client from environment-driven Config,
// retrying the initial connection a few times so the process survives a
// database that starts after it. The client is shared for the lifetime of
// the process; repositories take a *mongo.Database and never dial on their
// own.
//
// # Usage
//
//	cfg := mongo.Config{ConnectionURL: "mongodb://localhost:27017", Database: "APDEV"}
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(context.Background())
//
//	db := client.Database(cfg.Database)
//	if err := mongo.EnsureIndexes(ctx, db, indexes); err != nil {
//		log.Fatal(err)
//	}
//
//	health := mongo.Healthcheck(client)
//
// # Error Handling
//
// Connection failures wrap ErrConnect; probe failures wrap
// ErrPing. IsDuplicateKey and IsNoDocuments classify driver
// errors without leaking driver types into callers.
package mongo
