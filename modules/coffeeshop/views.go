package coffeeshop

import "github.com/a-h/templ"

// Page is embedded in every page's params; the layout uses it for navigation.
type Page struct {
	LoggedIn bool
	Username string
}

type IndexPageParams struct {
	Page
	Shops []ShopCard
}

type ShopPageParams struct {
	Page
	Shop    ShopCard
	Reviews []Review
}

type UserPageParams struct {
	Page
	User        string
	Description string
	Reviews     []Review
}

type ProfilePageParams struct {
	Page
	Description string
}

type LoginPageParams struct {
	Page
	Login  string
	Error  string
	Notice string
}

type SignupPageParams struct {
	Page
}

type SignupFailedPageParams struct {
	Page
	Error string
}

type SearchFormPageParams struct {
	Page
}

type SearchResultsPageParams struct {
	Page
	Query     string
	Shops     []ShopCard
	Usernames []string
}

type ReviewSuccessPageParams struct {
	Page
}

type MakePageParams struct {
	Page
	Shops   []CoffeeShop
	Reviews []ReviewWithShop
}

// Views renders the pages of the site.
type Views struct {
	Index         func(IndexPageParams) templ.Component
	Shop          func(ShopPageParams) templ.Component
	User          func(UserPageParams) templ.Component
	Profile       func(ProfilePageParams) templ.Component
	Login         func(LoginPageParams) templ.Component
	Signup        func(SignupPageParams) templ.Component
	SignupFailed  func(SignupFailedPageParams) templ.Component
	SearchForm    func(SearchFormPageParams) templ.Component
	SearchResults func(SearchResultsPageParams) templ.Component
	ReviewSuccess func(ReviewSuccessPageParams) templ.Component
	Make          func(MakePageParams) templ.Component
}
