package handler

import (
	"context"
	"net/http"
)

// Context is the request context plus access to the request and response.
// Values put on the request context (session, request id) are visible
// through it, so it can be passed wherever a context.Context is expected.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext creates a Context for one request.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{Context: r.Context(), w: w, r: r}
}

type httpContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request              { return c.r }
func (c *httpContext) ResponseWriter() http.ResponseWriter { return c.w }
