package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie session holding the server-side token copy.
const SessionName = "talenthub_session"

const sessionTokenKey = "token"

// NewSessionStore builds the cookie store used as the fallback credential
// location when no Authorization header is present.
func NewSessionStore(secret string) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(RefreshTokenExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// SaveSessionToken stores the access token in the request session.
func SaveSessionToken(store sessions.Store, r *http.Request, w http.ResponseWriter, token string) error {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		// a stale or tampered cookie yields a fresh session
		sess, _ = store.New(r, SessionName)
	}
	sess.Values[sessionTokenKey] = token
	return sess.Save(r, w)
}

// ClearSessionToken drops the stored token from the request session.
func ClearSessionToken(store sessions.Store, r *http.Request, w http.ResponseWriter) error {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	delete(sess.Values, sessionTokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// SessionToken returns the token stored in the request session, if any.
func SessionToken(store sessions.Store, r *http.Request) (string, bool) {
	sess, err := store.Get(r, SessionName)
	if err != nil {
		return "", false
	}
	token, ok := sess.Values[sessionTokenKey].(string)
	return token, ok && token != ""
}
