package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	"github.com/dmitrymomot/coffeeshops/pkg/auth"
	mongopkg "github.com/dmitrymomot/coffeeshops/pkg/mongo"
)

type profileDoc struct {
	Username    string `bson:"username"`
	Description string `bson:"description"`
}

type credentialDoc struct {
	Username string `bson:"username"`
	Password string `bson:"password"`
}

func (s *Store) GetProfile(ctx context.Context, username string) (*coffeeshop.Profile, error) {
	var doc profileDoc
	if err := s.profiles.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if mongopkg.IsNoDocuments(err) {
			return nil, coffeeshop.ErrNotFound
		}
		return nil, fmt.Errorf("find profile %s: %w", username, err)
	}
	return &coffeeshop.Profile{Username: doc.Username, Description: doc.Description}, nil
}

func (s *Store) UpsertProfile(ctx context.Context, username, description string) error {
	_, err := s.profiles.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"description": description}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert profile %s: %w", username, err)
	}
	return nil
}

// CreateCredential relies on the unique username index; a duplicate key
// becomes auth.ErrUsernameTaken.
func (s *Store) CreateCredential(ctx context.Context, username string, hash []byte) error {
	_, err := s.credentials.InsertOne(ctx, credentialDoc{Username: username, Password: string(hash)})
	if mongopkg.IsDuplicateKey(err) {
		return auth.ErrUsernameTaken
	}
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (s *Store) GetPasswordHash(ctx context.Context, username string) ([]byte, error) {
	var doc credentialDoc
	if err := s.credentials.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if mongopkg.IsNoDocuments(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}
	return []byte(doc.Password), nil
}

func (s *Store) SearchUsernames(ctx context.Context, pattern string) ([]string, error) {
	cur, err := s.credentials.Find(ctx,
		bson.M{"username": regex(pattern)},
		options.Find().SetProjection(bson.M{"username": 1, "_id": 0}),
	)
	if err != nil {
		return nil, fmt.Errorf("search usernames: %w", err)
	}

	var docs []credentialDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode usernames: %w", err)
	}

	usernames := make([]string, 0, len(docs))
	for _, d := range docs {
		usernames = append(usernames, d.Username)
	}
	return usernames, nil
}
