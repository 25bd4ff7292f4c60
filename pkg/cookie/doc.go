// Package cookie provides an HTTP cookie manager with HMAC-signed values.
//
// A Manager is built from one or more secrets (at least 32 characters each)
// and a set of default Options. Signed cookies carry the base64 value and an
// HMAC-SHA256 signature; the first secret signs, every secret verifies, so
// secrets can be rotated without logging everyone out.
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	man.SetSigned(w, "sid", token)
//	token, err := man.GetSigned(r, "sid")
//
// Flash messages are signed one-shot cookies read back with GetFlash.
package cookie
