// Package session provides server-side login sessions for the web app.
//
// A Manager issues a random token on login, stores the Session under that
// token and hands the token to the browser in a signed cookie. Sessions
// carry the username of the logged-in visitor; visitors who never log in
// have no session at all.
//
// Two Store implementations are available: MemoryStore, which is local to
// the process and sweeps expired sessions periodically, and RedisStore,
// which relies on key TTLs and survives restarts. NewStore picks one from
// Config.Store.
//
// Expiry is sliding: every request through Middleware may push ExpiresAt to
// now+IdleTimeout (at most once per ActivityUpdateThreshold) but never past
// CreatedAt+MaxLifetime.
//
// # Usage
//
//	store, err := session.NewStore(cfg, redisClient)
//	if err != nil {
//		return err
//	}
//	mgr := session.NewFromConfig(cfg,
//		session.WithStore(store),
//		session.WithCookieManager(cookies),
//	)
//
//	r.Use(mgr.Middleware)
//	r.With(mgr.RequireAuth).Get("/profile", profile)
//
//	// in the login handler
//	if _, err := mgr.Authenticate(ctx, w, r, username); err != nil {
//		return err
//	}
//
//	// in handlers
//	username, ok := session.UsernameFromContext(r.Context())
package session
