package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

type templResponse struct {
	component templ.Component
	status    int
	options   []datastar.PatchElementOption
}

// Render outputs component via SSE for DataStar or HTML for regular requests.
// The status code only applies to regular requests.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a 200 response from a templ component.
//
//	return handler.Templ(views.Index(data))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplStatus is Templ with an explicit status code, e.g. a login form
// re-rendered with 401.
func TemplStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, status: status, options: opts}
}
