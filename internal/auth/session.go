package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "feedback_session"

// IdentityContextKey is where the session guard middleware stores the
// resolved username on the request context.
const IdentityContextKey = "identity"

// ErrNoSession is returned when a token is missing, invalid, expired or has
// been revoked. Callers get no finer detail.
var ErrNoSession = errors.New("no active session")

// SessionManager issues and resolves browser sessions. A session is valid
// only while its token signature checks out and the session store still
// holds the matching record.
type SessionManager struct {
	tokens *TokenService
	store  SessionStoreInterface
	secure bool
}

// NewSessionManager creates a session manager.
func NewSessionManager(tokens *TokenService, store SessionStoreInterface, secureCookies bool) *SessionManager {
	return &SessionManager{tokens: tokens, store: store, secure: secureCookies}
}

// Issue starts a session for the user and returns the signed token.
func (m *SessionManager) Issue(ctx context.Context, username string) (string, error) {
	sessionID, token, err := m.tokens.Generate(username)
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, sessionID, username, SessionTTL); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the username behind a session token, or ErrNoSession.
func (m *SessionManager) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return "", ErrNoSession
	}
	username, err := m.store.Get(ctx, claims.ID)
	if err != nil || username != claims.Username {
		return "", ErrNoSession
	}
	return claims.Username, nil
}

// Revoke ends the session behind a token. Unparseable tokens are already
// dead and revoke cleanly.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return nil
	}
	return m.store.Revoke(ctx, claims.ID)
}

// RevokeAllFor ends every live session belonging to the user, including ones
// issued to other browsers.
func (m *SessionManager) RevokeAllFor(ctx context.Context, username string) error {
	return m.store.RevokeAll(ctx, username)
}

// SetCookie attaches the session token to the response.
func (m *SessionManager) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *SessionManager) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentIdentity resolves the requester's identity from the session cookie.
// It returns the empty string when there is none; routes behind the session
// guard middleware should use Identity instead.
func (m *SessionManager) CurrentIdentity(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	username, err := m.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		return ""
	}
	return username
}

// Identity returns the username placed on the context by the session guard.
func Identity(c echo.Context) string {
	username, _ := c.Get(IdentityContextKey).(string)
	return username
}
