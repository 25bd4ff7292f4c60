package coffeeshop

// Config holds the web module settings.
type Config struct {
	// RequireAuthForReviews sends anonymous review submissions to the login
	// page and lets only the author edit a review.
	RequireAuthForReviews bool `env:"REVIEWS_REQUIRE_AUTH" envDefault:"false"`

	// ValidateReferences rejects reviews for shop ids that do not exist.
	ValidateReferences bool `env:"REVIEWS_VALIDATE_REFERENCES" envDefault:"false"`

	// ImageMapFile replaces the built-in shop image map (YAML, name: file).
	ImageMapFile string `env:"IMAGE_MAP_FILE" envDefault:""`

	// StaticDir is served under /static/.
	StaticDir string `env:"STATIC_DIR" envDefault:"public"`
}
