package coffeeshop

// CoffeeShop is a listed shop. Shops are read-only for visitors; they enter
// the system through the seed command.
type CoffeeShop struct {
	ID          string `yaml:"-"`
	Name        string `yaml:"name"`
	Address     string `yaml:"address,omitempty"`
	Description string `yaml:"description,omitempty"`
	Hours       string `yaml:"hours,omitempty"`
}

// Profile is the public description a user maintains on their profile page.
type Profile struct {
	Username    string
	Description string
}

// Review references its shop and author by plain strings; neither reference
// is enforced by the store. Rating is nil when the submitted value was not a number.
type Review struct {
	ID           string
	CoffeeShopID string
	Rating       *int
	Comment      string
	Username     string
}

// ShopCard is a shop together with its listing image.
type ShopCard struct {
	CoffeeShop
	Image string
}

// ReviewWithShop is a review annotated with the name of the shop it belongs to.
type ReviewWithShop struct {
	Review
	CoffeeShopName string
}
