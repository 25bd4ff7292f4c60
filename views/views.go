// Package views renders the site's pages from embedded html/template files.
// Every page shares layout.html and is exposed as a templ.Component.
package views

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/modules/coffeeshop"
)

//go:embed templates/*.html
var templates embed.FS

var funcs = template.FuncMap{
	"pathescape": url.PathEscape,
	"rating": func(r *int) string {
		if r == nil {
			return "-"
		}
		return strconv.Itoa(*r) + "/5"
	},
}

var base = template.Must(template.New("layout.html").Funcs(funcs).
	ParseFS(templates, "templates/layout.html", "templates/reviews.html"))

// page returns the layout combined with the content of templates/<name>.html.
func page(name string) *template.Template {
	return template.Must(template.Must(base.Clone()).ParseFS(templates, "templates/"+name+".html"))
}

func render[P any](t *template.Template) func(P) templ.Component {
	return func(p P) templ.Component {
		return templ.FromGoHTML(t, p)
	}
}

// New parses every page once and returns the views used by coffeeshop.Service.
func New() *coffeeshop.Views {
	return &coffeeshop.Views{
		Index:         render[coffeeshop.IndexPageParams](page("index")),
		Shop:          render[coffeeshop.ShopPageParams](page("coffeeshop")),
		User:          render[coffeeshop.UserPageParams](page("user")),
		Profile:       render[coffeeshop.ProfilePageParams](page("profile")),
		Login:         render[coffeeshop.LoginPageParams](page("login")),
		Signup:        render[coffeeshop.SignupPageParams](page("signup")),
		SignupFailed:  render[coffeeshop.SignupFailedPageParams](page("signup-failed")),
		SearchForm:    render[coffeeshop.SearchFormPageParams](page("search-form")),
		SearchResults: render[coffeeshop.SearchResultsPageParams](page("search-results")),
		ReviewSuccess: render[coffeeshop.ReviewSuccessPageParams](page("review-success")),
		Make:          render[coffeeshop.MakePageParams](page("make")),
	}
}

var errorPage = page("error")

// ErrorPage renders handler errors inside the site layout.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.FromGoHTML(errorPage, p)
}
