package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Indexes maps a collection name to the index models it must carry.
type Indexes map[string][]mongo.IndexModel

// EnsureIndexes creates every index in idx. CreateMany is idempotent for
// identical definitions, so this is safe to run on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database, idx Indexes) error {
	for coll, models := range idx {
		if len(models) == 0 {
			continue
		}
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
