package handler

import (
	"net/http"
	"strings"
)

// IsDataStar reports whether the request came from the DataStar client: it
// either accepts an event stream or carries signals in the datastar query
// parameter. Such requests get SSE patches instead of full pages.
func IsDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/event-stream") ||
		r.URL.Query().Has("datastar")
}
