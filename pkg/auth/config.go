package auth

// Config holds password hashing settings.
type Config struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}
