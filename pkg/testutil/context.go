package testutil

import (
	"net/http"

	id "msalsa/pkg/domain"
	"msalsa/pkg/platform/middleware/pagesession"
	"msalsa/pkg/requestcontext"
)

// WithSessionID adds a page session ID to the request context.
// This simulates what the pagesession middleware would do.
// If the sessionID is not a valid UUID, it will not be added to the context.
func WithSessionID(req *http.Request, sessionID string) *http.Request {
	if parsedSessionID, err := id.ParseSessionID(sessionID); err == nil {
		return req.WithContext(requestcontext.WithSessionID(req.Context(), parsedSessionID))
	}
	return req
}

// WithSessionCookie attaches the page session cookie, as a returning browser would.
func WithSessionCookie(req *http.Request, sessionID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: pagesession.CookieName, Value: sessionID})
	return req
}

// SessionCookie returns the page session cookie set on the response, if any.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == pagesession.CookieName {
			return c
		}
	}
	return nil
}
