package handler

import (
	"net/http"
	"time"
)

// CookieOptions controls the auth cookie attributes. In production the
// front-end lives on another origin, so the cookie must be Secure with
// SameSite=None; during development Lax keeps plain-HTTP flows working.
type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

func (o CookieOptions) sameSite() http.SameSite {
	if o.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

func setAuthCookie(w http.ResponseWriter, name string, value string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.sameSite(),
	})
}

func clearAuthCookie(w http.ResponseWriter, name string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.sameSite(),
	})
}
