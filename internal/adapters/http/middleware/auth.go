package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"
	"time"

	sessionStore "crudtask/internal/adapters/storage/session"
	domainUser "crudtask/internal/domain/user"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// Session represents an authenticated session.
type Session struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// SessionStore is an in-memory session store. When a persistence store is
// attached, every mutation is written through so logins survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	persist  sessionStore.Store // optional
}

// NewSessionStore creates a new in-memory session store. persist may be nil.
func NewSessionStore(persist sessionStore.Store) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		persist:  persist,
	}
}

// Hydrate loads persisted sessions into memory. Expired records are dropped.
// PRE: persist is non-nil
// POST: every unexpired persisted session is available via Get
func (ss *SessionStore) Hydrate(ctx context.Context) error {
	if ss.persist == nil {
		return nil
	}
	recs, err := ss.persist.LoadAll(ctx)
	if err != nil {
		return err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	for _, rec := range recs {
		createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil || time.Since(createdAt) > sessionTTL {
			continue
		}
		ss.sessions[rec.Token] = Session{
			UserID:    rec.UserID,
			Name:      rec.Name,
			Email:     rec.Email,
			Role:      rec.Role,
			CreatedAt: createdAt,
		}
	}
	return nil
}

// sessionTTL is how long a session stays valid after login.
const sessionTTL = 24 * time.Hour

// Create stores a new session and returns the token.
// PRE: userID, email, role are non-empty
// POST: Session is stored (and persisted when a store is attached), token is returned
func (ss *SessionStore) Create(ctx context.Context, identity domainUser.Identity) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	session := Session{
		UserID:    identity.ID.String(),
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      identity.Role,
		CreatedAt: time.Now(),
	}
	ss.mu.Lock()
	ss.sessions[token] = session
	ss.mu.Unlock()

	if ss.persist != nil {
		rec := sessionStore.Record{
			Token:     token,
			UserID:    session.UserID,
			Name:      session.Name,
			Email:     session.Email,
			Role:      session.Role,
			CreatedAt: session.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := ss.persist.Save(ctx, rec); err != nil {
			// The in-memory session still works for this process lifetime.
			slog.Error("session_persist_failed", "error", err.Error())
		}
	}
	return token, nil
}

// Get retrieves a session by token.
// PRE: token is non-empty
// POST: Returns session if valid and not expired
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.RLock()
	session, ok := ss.sessions[token]
	ss.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Since(session.CreatedAt) > sessionTTL {
		ss.Delete(context.Background(), token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed from memory and persistence
func (ss *SessionStore) Delete(ctx context.Context, token string) {
	ss.mu.Lock()
	delete(ss.sessions, token)
	ss.mu.Unlock()

	if ss.persist != nil {
		if err := ss.persist.Delete(ctx, token); err != nil {
			slog.Error("session_delete_failed", "error", err.Error())
		}
	}
}

const sessionCookieName = "crudtask_session"

// SecureCookies controls the Secure flag on session cookies. Set to true in
// production so cookies are only sent over HTTPS.
var SecureCookies = false

// Auth returns middleware that extracts the session from the cookie and sets
// it in the request context. It does NOT block unauthenticated requests —
// the route table's guard handles that.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value); ok {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   86400, // 24 hours
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// SessionToken returns the raw session token from the request cookie.
func SessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// IsAdmin checks if the current session belongs to an admin.
func IsAdmin(ctx context.Context) bool {
	session, ok := GetSessionFromContext(ctx)
	return ok && session.Role == domainUser.RoleAdmin
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
