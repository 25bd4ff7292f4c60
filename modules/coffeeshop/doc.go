// Package coffeeshop serves the coffee shop directory: shop listings and
// details, search, signup and login, profiles and reviews.
//
// Service wires the page handlers onto a chi router. Persistence is behind
// Storage (see the mongostore subpackage) and rendering behind Views, so both
// can be swapped in tests.
//
//	svc := coffeeshop.NewService(cfg, store, passwordAuth, sessionMgr, views.New(), errorHandler,
//		coffeeshop.WithLogger(log),
//		coffeeshop.WithFlash(cookieMgr),
//	)
//	http.ListenAndServe(":5000", svc.Handle())
package coffeeshop
