package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dom "Todolists/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "todo_session"

type failingStore struct{}

func (failingStore) Load(context.Context, string) (*Session, error) {
	return nil, errors.New("backend down")
}
func (failingStore) Save(context.Context, string, *Session) error { return nil }
func (failingStore) Delete(context.Context, string) error         { return nil }

// unwritableStore loads normally but rejects every write.
type unwritableStore struct{ *MemoryStore }

func (unwritableStore) Save(context.Context, string, *Session) error {
	return errors.New("redis down")
}

func newTestRouter(store Store, created *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cookies := NewCookieStore("test-secret", time.Hour, false)
	mgr := NewManager(store, cookies, testCookie, func() { *created++ })

	r := gin.New()
	r.Use(mgr.Middleware())
	r.GET("/count", func(c *gin.Context) {
		c.String(http.StatusOK, "%d", len(FromContext(c).Lists))
	})
	r.POST("/add", func(c *gin.Context) {
		s := FromContext(c)
		s.Lists = append(s.Lists, dom.List{Name: "new"})
		c.Status(http.StatusNoContent)
	})
	r.POST("/commit", func(c *gin.Context) {
		s := FromContext(c)
		s.Lists = append(s.Lists, dom.List{Name: "new"})
		if err := Save(c); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_CreatesSessionOnFirstRequest(t *testing.T) {
	store := NewMemoryStore(time.Hour, clockwork.NewFakeClock())
	created := 0
	r := newTestRouter(store, &created)

	rec := do(r, http.MethodGet, "/count", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Body.String())
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, store.Len())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestMiddleware_ReusesSessionAcrossRequests(t *testing.T) {
	store := NewMemoryStore(time.Hour, clockwork.NewFakeClock())
	created := 0
	r := newTestRouter(store, &created)

	first := do(r, http.MethodPost, "/add", nil)
	require.Equal(t, http.StatusNoContent, first.Code)
	cookies := first.Result().Cookies()

	do(r, http.MethodPost, "/add", cookies)
	rec := do(r, http.MethodGet, "/count", cookies)

	assert.Equal(t, "2", rec.Body.String())
	assert.Equal(t, 1, created)
	reissued := rec.Result().Cookies()
	require.Len(t, reissued, 1, "the token cookie is refreshed on every request")
	assert.Equal(t, int(time.Hour.Seconds()), reissued[0].MaxAge)
}

func TestMiddleware_ActiveSessionOutlivesTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(time.Minute, clock)
	created := 0
	r := newTestRouter(store, &created)

	cookies := do(r, http.MethodPost, "/add", nil).Result().Cookies()
	for i := 0; i < 3; i++ {
		clock.Advance(40 * time.Second)
		rec := do(r, http.MethodGet, "/count", cookies)
		require.Equal(t, "1", rec.Body.String())
		cookies = rec.Result().Cookies()
		require.Len(t, cookies, 1)
	}

	assert.Equal(t, 1, created, "state and cookie expiry slide with activity")
}

func TestSave_PersistsBeforeResponse(t *testing.T) {
	store := NewMemoryStore(time.Hour, clockwork.NewFakeClock())
	created := 0
	r := newTestRouter(store, &created)

	rec := do(r, http.MethodPost, "/commit", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodGet, "/count", rec.Result().Cookies())
	assert.Equal(t, "1", rec.Body.String())
}

func TestSave_BackendFailureIsReported(t *testing.T) {
	created := 0
	r := newTestRouter(unwritableStore{NewMemoryStore(time.Hour, nil)}, &created)

	rec := do(r, http.MethodPost, "/commit", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMiddleware_TamperedCookieStartsFresh(t *testing.T) {
	store := NewMemoryStore(time.Hour, clockwork.NewFakeClock())
	created := 0
	r := newTestRouter(store, &created)

	rec := do(r, http.MethodGet, "/count", []*http.Cookie{{Name: testCookie, Value: "forged"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Body.String())
	assert.Equal(t, 1, created)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestMiddleware_ExpiredStateStartsFresh(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStore(time.Minute, clock)
	created := 0
	r := newTestRouter(store, &created)

	first := do(r, http.MethodPost, "/add", nil)
	cookies := first.Result().Cookies()

	clock.Advance(2 * time.Minute)
	rec := do(r, http.MethodGet, "/count", cookies)

	assert.Equal(t, "0", rec.Body.String())
	assert.Equal(t, 2, created)
}

func TestMiddleware_BackendErrorIs500(t *testing.T) {
	created := 0
	r := newTestRouter(NewMemoryStore(time.Hour, nil), &created)
	first := do(r, http.MethodGet, "/count", nil)
	cookies := first.Result().Cookies()

	broken := newTestRouter(failingStore{}, &created)
	rec := do(broken, http.MethodGet, "/count", cookies)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
