package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/pkg/binder"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func errorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "Error: "+p.Error+" id="+p.RequestID)
		return err
	})
}

type editRequest struct {
	ID      string `path:"id"`
	Comment string `form:"comment"`
	Rating  int    `form:"rating"`
}

func TestWrap_BindersAndTempl(t *testing.T) {
	t.Parallel()

	h := handler.Wrap[handler.Context, editRequest](
		func(ctx handler.Context, req editRequest) handler.Response {
			return handler.Templ(text(req.ID + ":" + req.Comment))
		},
		handler.WithBinders[handler.Context, editRequest](binder.Path(chi.URLParam), binder.Form()),
	)

	r := chi.NewRouter()
	r.Post("/reviews/{id}/edit", h)
	r.Get("/reviews/{id}/edit", h)

	t.Run("post", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/reviews/r1/edit", strings.NewReader(url.Values{"comment": {"nice"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "r1:nice", rec.Body.String())
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("get skips form binder", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/r2/edit", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "r2:", rec.Body.String())
	})

	t.Run("bind error is bad request", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/reviews/r1/edit", strings.NewReader("rating=abc"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWrap_Decorators(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap[handler.Context, struct{}](
		func(handler.Context, struct{}) handler.Response { return handler.Templ(text("ok")) },
		handler.WithDecorators(mark("outer"), mark("inner")),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	var got error
	h := handler.Wrap[handler.Context, struct{}](
		func(handler.Context, struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { got = err }),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
}

type visitorContext struct {
	handler.Context
	visitor string
}

func TestWrap_ContextFactory(t *testing.T) {
	t.Parallel()

	h := handler.Wrap[visitorContext, struct{}](
		func(ctx visitorContext, _ struct{}) handler.Response {
			return handler.Templ(text("hello " + ctx.visitor))
		},
		handler.WithContextFactory[visitorContext, struct{}](func(w http.ResponseWriter, r *http.Request) visitorContext {
			return visitorContext{Context: handler.NewContext(w, r), visitor: r.Header.Get("X-Visitor")}
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Visitor", "alice")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello alice", rec.Body.String())
}

func TestTemplStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.TemplStatus(http.StatusUnauthorized, text("login")).Render(rec, httptest.NewRequest(http.MethodPost, "/login", nil)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "login", rec.Body.String())
}

func TestTempl_DataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/event-stream")
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Templ(text("<div id=\"x\">hi</div>"), handler.WithTarget("#x")).Render(rec, req))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
	assert.Contains(t, rec.Body.String(), "hi")
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("regular", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("/make").Render(rec, httptest.NewRequest(http.MethodPost, "/reviews/1/edit", nil)))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/make", rec.Header().Get("Location"))
	})

	t.Run("with code", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		require.NoError(t, handler.RedirectWithCode("/login", http.StatusFound).Render(rec, httptest.NewRequest(http.MethodGet, "/profile", nil)))
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("datastar", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?datastar=1", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("/make").Render(rec, req))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/make")
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(accept))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar={}", nil)))
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{"generic", errors.New("db exploded"), http.StatusInternalServerError, "Something went wrong", "ERROR"},
		{"not found", handler.ErrNotFound, http.StatusNotFound, "Page not found", "WARN"},
		{"wrapped", errors.Join(errors.New("ctx"), handler.ErrForbidden), http.StatusForbidden, "You are not allowed", "WARN"},
		{"custom", handler.NewHTTPError(http.StatusConflict, "Taken"), http.StatusConflict, "Taken", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewTextHandler(&buf, nil))
			onError := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{ErrorPage: errorPage})

			h := middleware.RequestID(handler.Wrap[handler.Context, struct{}](
				func(handler.Context, struct{}) handler.Response { return handler.Error(tt.err) },
				handler.WithErrorHandler[handler.Context, struct{}](onError),
			))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "db exploded")
			assert.NotContains(t, rec.Body.String(), "id= ")
			assert.Regexp(t, `id=\S+`, rec.Body.String())
			assert.Contains(t, buf.String(), "level="+tt.wantLevel)
		})
	}
}

func TestNewErrorHandler_NoPage(t *testing.T) {
	t.Parallel()

	onError := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{})
	rec := httptest.NewRecorder()
	onError(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestNewErrorHandler_Username(t *testing.T) {
	t.Parallel()

	var got handler.ErrorPageParams
	onError := handler.NewErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			got = p
			return text("oops")
		},
		Username: func(*http.Request) string { return "alice" },
	})

	rec := httptest.NewRecorder()
	onError(handler.NewContext(rec, httptest.NewRequest(http.MethodGet, "/", nil)), handler.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, got.LoggedIn)
	assert.Equal(t, "alice", got.Username)
}
