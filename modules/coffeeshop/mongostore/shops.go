package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	mongopkg "github.com/dmitrymomot/coffeeshops/pkg/mongo"
)

type shopDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Address     string        `bson:"address,omitempty"`
	Description string        `bson:"description,omitempty"`
	Hours       string        `bson:"hours,omitempty"`
}

func (d shopDoc) model() coffeeshop.CoffeeShop {
	return coffeeshop.CoffeeShop{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Address:     d.Address,
		Description: d.Description,
		Hours:       d.Hours,
	}
}

func (s *Store) ListShops(ctx context.Context) ([]coffeeshop.CoffeeShop, error) {
	return s.findShops(ctx, bson.M{})
}

func (s *Store) GetShop(ctx context.Context, id string) (*coffeeshop.CoffeeShop, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc shopDoc
	if err := s.shops.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if mongopkg.IsNoDocuments(err) {
			return nil, coffeeshop.ErrNotFound
		}
		return nil, fmt.Errorf("find shop %s: %w", id, err)
	}
	shop := doc.model()
	return &shop, nil
}

func (s *Store) SearchShops(ctx context.Context, pattern string) ([]coffeeshop.CoffeeShop, error) {
	return s.findShops(ctx, bson.M{"name": regex(pattern)})
}

func (s *Store) findShops(ctx context.Context, filter bson.M) ([]coffeeshop.CoffeeShop, error) {
	cur, err := s.shops.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find shops: %w", err)
	}

	var docs []shopDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode shops: %w", err)
	}

	shops := make([]coffeeshop.CoffeeShop, 0, len(docs))
	for _, d := range docs {
		shops = append(shops, d.model())
	}
	return shops, nil
}

// UpsertShops writes shops keyed by name and reports how many were new.
func (s *Store) UpsertShops(ctx context.Context, shops []coffeeshop.CoffeeShop) (int, error) {
	created := 0
	for _, shop := range shops {
		res, err := s.shops.UpdateOne(ctx,
			bson.M{"name": shop.Name},
			bson.M{"$set": shopDoc{
				Name:        shop.Name,
				Address:     shop.Address,
				Description: shop.Description,
				Hours:       shop.Hours,
			}},
			options.UpdateOne().SetUpsert(true),
		)
		if err != nil {
			return created, fmt.Errorf("upsert shop %q: %w", shop.Name, err)
		}
		if res.UpsertedCount > 0 {
			created++
		}
	}
	return created, nil
}
