package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
	"github.com/dmitrymomot/coffeeshops/views"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestLayoutNavigation(t *testing.T) {
	t.Parallel()

	v := views.New()

	anon := renderString(t, v.Signup(coffeeshop.SignupPageParams{}))
	assert.Contains(t, anon, `href="/login"`)
	assert.NotContains(t, anon, `href="/logout"`)

	in := renderString(t, v.SearchForm(coffeeshop.SearchFormPageParams{
		Page: coffeeshop.Page{LoggedIn: true, Username: "alice"},
	}))
	assert.Contains(t, in, `href="/logout"`)
	assert.Contains(t, in, `href="/profile">alice`)
}

func TestShopPage(t *testing.T) {
	t.Parallel()

	rating := 4
	out := renderString(t, views.New().Shop(coffeeshop.ShopPageParams{
		Shop: coffeeshop.ShopCard{
			CoffeeShop: coffeeshop.CoffeeShop{ID: "abc", Name: "Poison Coffee & Doughnuts"},
			Image:      "PCD.jpg",
		},
		Reviews: []coffeeshop.Review{
			{Rating: &rating, Comment: "<b>great</b>", Username: "alice"},
			{Comment: "anonymous one"},
		},
	}))

	assert.Contains(t, out, "<title>Poison Coffee &amp; Doughnuts</title>")
	assert.Contains(t, out, `/static/images/PCD.jpg`)
	assert.Contains(t, out, `name="coffeeshop_id" value="abc"`)
	assert.Contains(t, out, "4/5")
	assert.Contains(t, out, "&lt;b&gt;great&lt;/b&gt;")
	assert.Contains(t, out, "by anonymous")
}

func TestMakePage(t *testing.T) {
	t.Parallel()

	out := renderString(t, views.New().Make(coffeeshop.MakePageParams{
		Shops: []coffeeshop.CoffeeShop{{ID: "s1", Name: "Primero"}},
		Reviews: []coffeeshop.ReviewWithShop{
			{Review: coffeeshop.Review{ID: "r1", Comment: "hi"}, CoffeeShopName: coffeeshop.UnknownShopName},
		},
	}))

	assert.Contains(t, out, `action="/reviews/r1/edit"`)
	assert.Contains(t, out, "<h2>Unknown</h2>")
	assert.Contains(t, out, `<option value="s1">Primero</option>`)
}

func TestLoginPage(t *testing.T) {
	t.Parallel()

	out := renderString(t, views.New().Login(coffeeshop.LoginPageParams{
		Login:  "alice",
		Error:  "Invalid username or password",
		Notice: "Account created",
	}))
	assert.Contains(t, out, `value="alice"`)
	assert.Contains(t, out, "Invalid username or password")
	assert.Contains(t, out, "Account created")
}

func TestEveryPageRenders(t *testing.T) {
	t.Parallel()

	v := views.New()
	pages := map[string]templ.Component{
		"index":          v.Index(coffeeshop.IndexPageParams{}),
		"user":           v.User(coffeeshop.UserPageParams{User: "bob"}),
		"profile":        v.Profile(coffeeshop.ProfilePageParams{}),
		"signup-failed":  v.SignupFailed(coffeeshop.SignupFailedPageParams{}),
		"search-results": v.SearchResults(coffeeshop.SearchResultsPageParams{Query: "x"}),
		"review-success": v.ReviewSuccess(coffeeshop.ReviewSuccessPageParams{}),
		"error":          views.ErrorPage(handler.ErrorPageParams{StatusCode: 404, Error: "Page not found"}),
	}
	for name, c := range pages {
		out := renderString(t, c)
		assert.Contains(t, out, "</html>", name)
	}
}

func TestErrorPageNavigation(t *testing.T) {
	t.Parallel()

	out := renderString(t, views.ErrorPage(handler.ErrorPageParams{
		StatusCode: 404,
		Error:      "Page not found",
		LoggedIn:   true,
		Username:   "alice",
	}))
	assert.Contains(t, out, `<a href="/profile">alice</a>`)
	assert.Contains(t, out, "Page not found")
}

func TestUserLinksEscapeUsernames(t *testing.T) {
	t.Parallel()

	v := views.New()

	results := renderString(t, v.SearchResults(coffeeshop.SearchResultsPageParams{Query: "a", Usernames: []string{"a/b"}}))
	assert.Contains(t, results, `href="/user/a%2Fb"`)

	profile := renderString(t, v.Profile(coffeeshop.ProfilePageParams{Page: coffeeshop.Page{LoggedIn: true, Username: "a/b"}}))
	assert.Contains(t, profile, `href="/user/a%2Fb"`)

	shop := renderString(t, v.Shop(coffeeshop.ShopPageParams{Reviews: []coffeeshop.Review{{Comment: "ok", Username: "a/b"}}}))
	assert.Contains(t, shop, `href="/user/a%2Fb"`)
}
