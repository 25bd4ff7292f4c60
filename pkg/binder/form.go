package binder

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// Form binds application/x-www-form-urlencoded bodies into fields tagged `form:"name"`.
// Requests without a body (GET, HEAD, no Content-Type) are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindToStruct(v, "form", r.PostForm.Get, ErrInvalidForm)
	}
}

// Query binds URL query parameters into fields tagged `query:"name"`.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		q := r.URL.Query()
		return bindToStruct(v, "query", func(key string) string {
			if !q.Has(key) {
				return ""
			}
			return q.Get(key)
		}, ErrInvalidQuery)
	}
}

// Path binds router path parameters into fields tagged `path:"name"`.
// The extractor is typically chi.URLParam. chi matches against the escaped
// path when the request has one, so values are unescaped in that case
// ("a%2Fb" binds as "a/b").
func Path(extractor func(r *http.Request, key string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		escaped := r.URL.RawPath != ""
		var unescapeErr error
		err := bindToStruct(v, "path", func(key string) string {
			value := extractor(r, key)
			if !escaped {
				return value
			}
			unescaped, err := url.PathUnescape(value)
			if err != nil {
				if unescapeErr == nil {
					unescapeErr = fmt.Errorf("%w: %s: %v", ErrInvalidPath, key, err)
				}
				return ""
			}
			return unescaped
		}, ErrInvalidPath)
		if unescapeErr != nil {
			return unescapeErr
		}
		return err
	}
}
