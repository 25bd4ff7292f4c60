package coffeeshop

import (
	"context"

	"github.com/dmitrymomot/coffeeshops/pkg/auth"
)

// ShopStorage reads coffee shops.
type ShopStorage interface {
	ListShops(ctx context.Context) ([]CoffeeShop, error)
	// GetShop returns ErrInvalidID for malformed ids and ErrNotFound for unknown ones.
	GetShop(ctx context.Context, id string) (*CoffeeShop, error)
	// SearchShops matches pattern as a case-insensitive regular expression against shop names.
	SearchShops(ctx context.Context, pattern string) ([]CoffeeShop, error)
}

// ProfileStorage reads and writes user profiles.
type ProfileStorage interface {
	// GetProfile returns ErrNotFound when the user never saved a profile.
	GetProfile(ctx context.Context, username string) (*Profile, error)
	// UpsertProfile updates the profile of username or creates it.
	UpsertProfile(ctx context.Context, username, description string) error
}

// ReviewStorage reads and writes reviews.
type ReviewStorage interface {
	CreateReview(ctx context.Context, review *Review) error
	GetReview(ctx context.Context, id string) (*Review, error)
	// UpdateReview changes rating and comment only.
	UpdateReview(ctx context.Context, id string, rating *int, comment string) error
	ListReviews(ctx context.Context) ([]Review, error)
	ListReviewsByShop(ctx context.Context, shopID string) ([]Review, error)
	ListReviewsByUser(ctx context.Context, username string) ([]Review, error)
}

// CredentialStorage stores login credentials.
type CredentialStorage interface {
	auth.PasswordStorage
	// SearchUsernames matches pattern as a case-insensitive regular expression
	// against registered usernames.
	SearchUsernames(ctx context.Context, pattern string) ([]string, error)
}

// Storage is everything the web handlers need from persistence.
type Storage interface {
	ShopStorage
	ProfileStorage
	ReviewStorage
	CredentialStorage
}
