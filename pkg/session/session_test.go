package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]session.Values
}

func (m *memStore) Load(_ context.Context, key string) (session.Values, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, session.ErrNotFound
	}
	out := make(session.Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out, nil
}

func (m *memStore) Save(_ context.Context, key string, values session.Values, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = values
	return nil
}

func TestMiddleware_Counter(t *testing.T) {
	t.Parallel()
	store := &memStore{data: map[string]session.Values{}}
	cfg := session.Config{CookieName: "sessionid", TTL: time.Hour}

	e := echo.New()
	e.Use(session.Middleware(store, cfg, zap.NewNop()))
	e.GET("/count", func(c echo.Context) error {
		sess := session.FromContext(c)
		n := sess.GetInt("n", 0)
		sess.Set("n", n+1)
		return c.String(http.StatusOK, strconv.Itoa(n))
	})
	e.GET("/peek", func(c echo.Context) error {
		return c.String(http.StatusOK, strconv.Itoa(session.FromContext(c).GetInt("n", 0)))
	})

	do := func(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		if cookie != nil {
			r.AddCookie(cookie)
		}
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		return w
	}

	w := do("/count", nil)
	require.Equal(t, "0", w.Body.String())
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	require.Equal(t, "sessionid", cookie.Name)

	w = do("/count", cookie)
	require.Equal(t, "1", w.Body.String())

	w = do("/peek", cookie)
	require.Equal(t, "2", w.Body.String())
	require.Empty(t, w.Result().Cookies(), "unmodified session is not re-sent")

	w = do("/count", &http.Cookie{Name: "sessionid", Value: "not-a-uuid"})
	require.Equal(t, "0", w.Body.String())
}

func TestSession_GetInt(t *testing.T) {
	t.Parallel()
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", http.NoBody), httptest.NewRecorder())
	sess := session.FromContext(c)

	require.Equal(t, 5, sess.GetInt("missing", 5))
	sess.Set("f", float64(3))
	require.Equal(t, 3, sess.GetInt("f", 0))
	sess.Set("s", "x")
	require.Equal(t, 0, sess.GetInt("s", 0))
	require.True(t, sess.Modified())
}
