package mongostore

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	mongopkg "github.com/dmitrymomot/coffeeshops/pkg/mongo"
)

type reviewDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	CoffeeShopID string        `bson:"coffeeshop_id"`
	Rating       bson.RawValue `bson:"rating"`
	Comment      string        `bson:"comment"`
	Username     string        `bson:"username"`
}

func (d reviewDoc) model() coffeeshop.Review {
	return coffeeshop.Review{
		ID:           d.ID.Hex(),
		CoffeeShopID: d.CoffeeShopID,
		Rating:       ratingFromRaw(d.Rating),
		Comment:      d.Comment,
		Username:     d.Username,
	}
}

// ratingFromRaw accepts every shape a rating has been stored in: integers,
// whole doubles, numeric strings from older edits, and null. Fractional or
// out-of-range doubles read as no rating.
func ratingFromRaw(v bson.RawValue) *int {
	var n int
	switch v.Type {
	case bson.TypeInt32:
		n = int(v.Int32())
	case bson.TypeInt64:
		n = int(v.Int64())
	case bson.TypeDouble:
		f := v.Double()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= 1<<63 {
			return nil
		}
		n = int(f)
	case bson.TypeString:
		return coffeeshop.ParseRating(v.StringValue())
	default:
		return nil
	}
	return &n
}

func (s *Store) CreateReview(ctx context.Context, review *coffeeshop.Review) error {
	res, err := s.reviews.InsertOne(ctx, bson.M{
		"coffeeshop_id": review.CoffeeShopID,
		"rating":        review.Rating,
		"comment":       review.Comment,
		"username":      review.Username,
	})
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		review.ID = oid.Hex()
	}
	return nil
}

func (s *Store) GetReview(ctx context.Context, id string) (*coffeeshop.Review, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc reviewDoc
	if err := s.reviews.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if mongopkg.IsNoDocuments(err) {
			return nil, coffeeshop.ErrNotFound
		}
		return nil, fmt.Errorf("find review %s: %w", id, err)
	}
	review := doc.model()
	return &review, nil
}

// UpdateReview sets rating and comment; the shop and author stay as they were.
func (s *Store) UpdateReview(ctx context.Context, id string, rating *int, comment string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := s.reviews.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"rating": rating, "comment": comment}},
	)
	if err != nil {
		return fmt.Errorf("update review %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return coffeeshop.ErrNotFound
	}
	return nil
}

func (s *Store) ListReviews(ctx context.Context) ([]coffeeshop.Review, error) {
	return s.findReviews(ctx, bson.M{})
}

func (s *Store) ListReviewsByShop(ctx context.Context, shopID string) ([]coffeeshop.Review, error) {
	return s.findReviews(ctx, bson.M{"coffeeshop_id": shopID})
}

func (s *Store) ListReviewsByUser(ctx context.Context, username string) ([]coffeeshop.Review, error) {
	return s.findReviews(ctx, bson.M{"username": username})
}

func (s *Store) findReviews(ctx context.Context, filter bson.M) ([]coffeeshop.Review, error) {
	cur, err := s.reviews.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]coffeeshop.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, d.model())
	}
	return reviews, nil
}
