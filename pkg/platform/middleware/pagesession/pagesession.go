// Package pagesession ties requests from one browser page to a session id
// carried in a cookie.
package pagesession

import (
	"net/http"
	"time"

	id "msalsa/pkg/domain"
	"msalsa/pkg/requestcontext"
)

// CookieName is the cookie holding the page session id.
const CookieName = "msalsa_session"

// Middleware reads the session cookie, issuing a fresh id when it is missing
// or malformed, and stores the id in the request context.
func Middleware(ttl time.Duration, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := fromCookie(r)
			if !ok {
				sessionID = id.NewSessionID()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    sessionID.String(),
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := requestcontext.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func fromCookie(r *http.Request) (id.SessionID, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return id.SessionID{}, false
	}
	sessionID, err := id.ParseSessionID(c.Value)
	if err != nil {
		return id.SessionID{}, false
	}
	return sessionID, true
}
