package coffeeshop_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	"github.com/dmitrymomot/coffeeshops/pkg/auth"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

// memStorage mimics the document store: 24-char hex ids, regex search and
// a unique username on credentials.
type memStorage struct {
	mu       sync.Mutex
	seq      int
	shops    []coffeeshop.CoffeeShop
	reviews  []coffeeshop.Review
	profiles map[string]string
	creds    map[string][]byte
	failWith error
}

func newMemStorage() *memStorage {
	return &memStorage{
		profiles: map[string]string{},
		creds:    map[string][]byte{},
	}
}

func (m *memStorage) nextID() string {
	m.seq++
	return fmt.Sprintf("%024x", m.seq)
}

func (m *memStorage) addShop(name string) coffeeshop.CoffeeShop {
	m.mu.Lock()
	defer m.mu.Unlock()
	shop := coffeeshop.CoffeeShop{ID: m.nextID(), Name: name}
	m.shops = append(m.shops, shop)
	return shop
}

func (m *memStorage) reviewCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reviews)
}

func (m *memStorage) credentialCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.creds)
}

func (m *memStorage) profileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.profiles)
}

func (m *memStorage) ListShops(context.Context) ([]coffeeshop.CoffeeShop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]coffeeshop.CoffeeShop(nil), m.shops...), nil
}

func (m *memStorage) GetShop(_ context.Context, id string) (*coffeeshop.CoffeeShop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !hexID.MatchString(id) {
		return nil, coffeeshop.ErrInvalidID
	}
	for _, shop := range m.shops {
		if shop.ID == id {
			return &shop, nil
		}
	}
	return nil, coffeeshop.ErrNotFound
}

func (m *memStorage) SearchShops(_ context.Context, pattern string) ([]coffeeshop.CoffeeShop, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []coffeeshop.CoffeeShop
	for _, shop := range m.shops {
		if re.MatchString(shop.Name) {
			out = append(out, shop)
		}
	}
	return out, nil
}

func (m *memStorage) GetProfile(_ context.Context, username string) (*coffeeshop.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	desc, ok := m.profiles[username]
	if !ok {
		return nil, coffeeshop.ErrNotFound
	}
	return &coffeeshop.Profile{Username: username, Description: desc}, nil
}

func (m *memStorage) UpsertProfile(_ context.Context, username, description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[username] = description
	return nil
}

func (m *memStorage) CreateReview(_ context.Context, review *coffeeshop.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = m.nextID()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memStorage) GetReview(_ context.Context, id string) (*coffeeshop.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !hexID.MatchString(id) {
		return nil, coffeeshop.ErrInvalidID
	}
	for _, r := range m.reviews {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, coffeeshop.ErrNotFound
}

func (m *memStorage) UpdateReview(_ context.Context, id string, rating *int, comment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !hexID.MatchString(id) {
		return coffeeshop.ErrInvalidID
	}
	for i := range m.reviews {
		if m.reviews[i].ID == id {
			m.reviews[i].Rating = rating
			m.reviews[i].Comment = comment
			return nil
		}
	}
	return coffeeshop.ErrNotFound
}

func (m *memStorage) ListReviews(context.Context) ([]coffeeshop.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]coffeeshop.Review(nil), m.reviews...), nil
}

func (m *memStorage) filterReviews(keep func(coffeeshop.Review) bool) []coffeeshop.Review {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []coffeeshop.Review
	for _, r := range m.reviews {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (m *memStorage) ListReviewsByShop(_ context.Context, shopID string) ([]coffeeshop.Review, error) {
	return m.filterReviews(func(r coffeeshop.Review) bool { return r.CoffeeShopID == shopID }), nil
}

func (m *memStorage) ListReviewsByUser(_ context.Context, username string) ([]coffeeshop.Review, error) {
	return m.filterReviews(func(r coffeeshop.Review) bool { return r.Username == username }), nil
}

func (m *memStorage) CreateCredential(_ context.Context, username string, hash []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[username]; ok {
		return auth.ErrUsernameTaken
	}
	m.creds[username] = hash
	return nil
}

func (m *memStorage) GetPasswordHash(_ context.Context, username string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hash, ok := m.creds[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return hash, nil
}

func (m *memStorage) SearchUsernames(_ context.Context, pattern string) ([]string, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for username := range m.creds {
		if re.MatchString(username) {
			out = append(out, username)
		}
	}
	return out, nil
}

var errStoreDown = errors.New("store down")

func text(format string, args ...any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

func reviewLines(reviews []coffeeshop.Review) string {
	var b strings.Builder
	for _, r := range reviews {
		rating := "null"
		if r.Rating != nil {
			rating = fmt.Sprint(*r.Rating)
		}
		fmt.Fprintf(&b, "\nreview %s shop=%s user=%s rating=%s comment=%s", r.ID, r.CoffeeShopID, r.Username, rating, r.Comment)
	}
	return b.String()
}

func cardLines(cards []coffeeshop.ShopCard) string {
	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "\nshop %s image=%s", c.Name, c.Image)
	}
	return b.String()
}

// stubViews renders plain text so tests can assert on page content.
func stubViews() *coffeeshop.Views {
	return &coffeeshop.Views{
		Index: func(p coffeeshop.IndexPageParams) templ.Component {
			return text("index loggedin=%v%s", p.LoggedIn, cardLines(p.Shops))
		},
		Shop: func(p coffeeshop.ShopPageParams) templ.Component {
			return text("coffeeshop %s image=%s%s", p.Shop.Name, p.Shop.Image, reviewLines(p.Reviews))
		},
		User: func(p coffeeshop.UserPageParams) templ.Component {
			return text("user %s description=%s%s", p.User, p.Description, reviewLines(p.Reviews))
		},
		Profile: func(p coffeeshop.ProfilePageParams) templ.Component {
			return text("profile %s description=%s", p.Username, p.Description)
		},
		Login: func(p coffeeshop.LoginPageParams) templ.Component {
			return text("login error=%s notice=%s", p.Error, p.Notice)
		},
		Signup: func(p coffeeshop.SignupPageParams) templ.Component {
			return text("signup loggedin=%v", p.LoggedIn)
		},
		SignupFailed: func(p coffeeshop.SignupFailedPageParams) templ.Component {
			return text("signup-failed error=%s", p.Error)
		},
		SearchForm: func(p coffeeshop.SearchFormPageParams) templ.Component {
			return text("search-form loggedin=%v", p.LoggedIn)
		},
		SearchResults: func(p coffeeshop.SearchResultsPageParams) templ.Component {
			return text("search-results query=%s users=%s%s", p.Query, strings.Join(p.Usernames, ","), cardLines(p.Shops))
		},
		ReviewSuccess: func(p coffeeshop.ReviewSuccessPageParams) templ.Component {
			return text("review-success loggedin=%v", p.LoggedIn)
		},
		Make: func(p coffeeshop.MakePageParams) templ.Component {
			var b strings.Builder
			for _, r := range p.Reviews {
				fmt.Fprintf(&b, "\nmade %s: %s", r.CoffeeShopName, r.Comment)
			}
			return text("make %s shops=%d%s", p.Username, len(p.Shops), b.String())
		},
	}
}

func stubErrorPage(p handler.ErrorPageParams) templ.Component {
	return text("error %d: %s", p.StatusCode, p.Error)
}
