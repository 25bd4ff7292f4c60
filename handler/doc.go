// Package handler provides type-safe HTTP request handling for server-rendered pages.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response. Wrap adapts it to http.HandlerFunc:
//
//	type ShopRequest struct {
//		ID string `path:"id"`
//	}
//
//	func show(ctx handler.Context, req ShopRequest) handler.Response {
//		shop, err := shops.Get(ctx, req.ID)
//		if err != nil {
//			return handler.Error(err)
//		}
//		return handler.Templ(views.Shop(shop))
//	}
//
//	r.Get("/coffeeshop/{id}", handler.Wrap(show,
//		handler.WithBinders[handler.Context, ShopRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, ShopRequest](onError),
//	))
//
// # Responses
//
// Templ and TemplStatus render a templ.Component as HTML. Redirect issues a
// 303. Error hands an error to the configured ErrorHandler. Requests made by
// the DataStar client get Server-Sent Events instead: components are patched
// into the page and redirects run in the browser.
//
// # Errors
//
// Binding failures are reported as ErrBadRequest. Return an HTTPError to
// choose the status code and the message shown to the user; any other error
// becomes a 500 with a generic message. NewErrorHandler logs each error with
// the chi request id and renders an error page.
package handler
