package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"Todolists/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	contextKeyState = "session"
	contextKeyID    = "session_id"
	cookieKeyToken  = "token"
)

// NewCookieStore returns the signed cookie store that carries session tokens.
func NewCookieStore(secret string, maxAge time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)
	return store
}

// Manager binds a token cookie to server-side session state.
type Manager struct {
	store      Store
	cookies    sessions.Store
	cookieName string
	onCreate   func()
}

// NewManager returns a Manager. onCreate, if non-nil, runs for every new session.
func NewManager(store Store, cookies sessions.Store, cookieName string, onCreate func()) *Manager {
	return &Manager{store: store, cookies: cookies, cookieName: cookieName, onCreate: onCreate}
}

type requestState struct {
	store Store
	id    string
	sess  *Session
	saved bool
}

func (st *requestState) save(ctx context.Context) error {
	if err := st.store.Save(ctx, st.id, st.sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	st.saved = true
	return nil
}

// Middleware ensures every request has a session with an initialized list
// collection, creating one when the cookie is absent, invalid or expired.
// The token cookie is reissued on every request so its expiry slides with
// the stored state. Handlers persist state with Save before writing a
// response; anything left unsaved is written back after the handler
// returns. Concurrent requests on one session are last-write-wins.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cookie, err := m.cookies.Get(c.Request, m.cookieName)
		if err != nil {
			slog.Debug("Discarding unreadable session cookie", "error", err)
		}
		if cookie == nil {
			cookie = sessions.NewSession(m.cookies, m.cookieName)
		}

		id, _ := cookie.Values[cookieKeyToken].(string)
		var sess *Session
		if id != "" {
			sess, err = m.store.Load(ctx, id)
			if err != nil && !errors.Is(err, ErrNotFound) {
				logging.WithError(err).Error("Failed to load session", "session_id", id)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
		}

		created := sess == nil
		if created {
			id = uuid.NewString()
			sess = New()
		}
		cookie.Values[cookieKeyToken] = id
		if err := cookie.Save(c.Request, c.Writer); err != nil {
			logging.WithError(err).Error("Failed to issue session cookie", "session_id", id)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if created {
			logging.WithSession(id).Debug("Session created")
			if m.onCreate != nil {
				m.onCreate()
			}
		}

		st := &requestState{store: m.store, id: id, sess: sess}
		c.Set(contextKeyState, st)
		c.Set(contextKeyID, id)
		c.Next()

		if st.saved {
			return
		}
		if err := st.save(ctx); err != nil {
			logging.WithError(err).Error("Failed to save session", "session_id", id)
		}
	}
}

// Save persists the request's session. Call it before writing a response
// so a backend failure can still be reported to the client.
func Save(c *gin.Context) error {
	return c.MustGet(contextKeyState).(*requestState).save(c.Request.Context())
}

// FromContext returns the session attached by Middleware.
func FromContext(c *gin.Context) *Session {
	return c.MustGet(contextKeyState).(*requestState).sess
}

// IDFromContext returns the session token attached by Middleware, or "".
func IDFromContext(c *gin.Context) string {
	return c.GetString(contextKeyID)
}
