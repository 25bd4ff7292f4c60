package mongostore

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	mongopkg "github.com/dmitrymomot/coffeeshops/pkg/mongo"
)

const (
	ShopsCollection       = "coffeeshops"
	ReviewsCollection     = "reviews"
	ProfilesCollection    = "user"
	CredentialsCollection = "login"
)

var _ coffeeshop.Storage = (*Store)(nil)

// Store is a coffeeshop.Storage backed by a single database.
type Store struct {
	shops       *mongo.Collection
	reviews     *mongo.Collection
	profiles    *mongo.Collection
	credentials *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		shops:       db.Collection(ShopsCollection),
		reviews:     db.Collection(ReviewsCollection),
		profiles:    db.Collection(ProfilesCollection),
		credentials: db.Collection(CredentialsCollection),
	}
}

// Indexes returns the indexes the store relies on. The unique username
// index on credentials is what makes signup race-free.
func Indexes() mongopkg.Indexes {
	return mongopkg.Indexes{
		CredentialsCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ProfilesCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ReviewsCollection: {
			{Keys: bson.D{{Key: "coffeeshop_id", Value: 1}}},
			{Keys: bson.D{{Key: "username", Value: 1}}},
		},
		ShopsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
	}
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, coffeeshop.ErrInvalidID
	}
	return oid, nil
}

// regex matches pattern case-insensitively. The pattern is used as is.
func regex(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}
