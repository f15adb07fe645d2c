package session

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const contextKey = "session"

var ErrNotFound = errors.New("session not found")

type Config struct {
	CookieName string        `yaml:"cookieName" envconfig:"SESSION_COOKIE_NAME" default:"sessionid"`
	TTL        time.Duration `yaml:"ttl" envconfig:"SESSION_TTL" default:"336h"`
}

type Values map[string]any

// Store persists session values by key. Load returns ErrNotFound for unknown or expired keys.
type Store interface {
	Load(ctx context.Context, key string) (Values, error)
	Save(ctx context.Context, key string, values Values, expireAt time.Time) error
}

type Session struct {
	Key      string
	values   Values
	modified bool
}

func (s *Session) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// GetInt reads a numeric value, tolerating the float64 a JSON round-trip produces.
func (s *Session) GetInt(key string, def int) int {
	v, ok := s.values[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	}
	return def
}

func (s *Session) Set(key string, v any) {
	s.values[key] = v
	s.modified = true
}

func (s *Session) Modified() bool {
	return s.modified
}

// FromContext returns the request session. Handlers mounted without Middleware get
// a throwaway session so callers never deal with nil.
func FromContext(c echo.Context) *Session {
	if s, ok := c.Get(contextKey).(*Session); ok {
		return s
	}
	return &Session{Key: uuid.NewString(), values: Values{}}
}

// Middleware loads the session named by the cookie and writes it back, together with
// the cookie, right before the response header goes out if a handler modified it.
func Middleware(store Store, cfg Config, log *zap.Logger) echo.MiddlewareFunc {
	log = log.Named("session")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			sess := load(ctx, c, store, cfg, log)
			c.Set(contextKey, sess)

			c.Response().Before(func() {
				if !sess.modified {
					return
				}
				expireAt := time.Now().Add(cfg.TTL)
				if err := store.Save(ctx, sess.Key, sess.values, expireAt); err != nil {
					log.Error("store.Save", zap.String("key", sess.Key), zap.Error(err))
					return
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    sess.Key,
					Path:     "/",
					Expires:  expireAt,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			})
			return next(c)
		}
	}
}

func load(ctx context.Context, c echo.Context, store Store, cfg Config, log *zap.Logger) *Session {
	fresh := &Session{Key: uuid.NewString(), values: Values{}}
	cookie, err := c.Cookie(cfg.CookieName)
	if err != nil {
		return fresh
	}
	if _, err = uuid.Parse(cookie.Value); err != nil {
		return fresh
	}
	values, err := store.Load(ctx, cookie.Value)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn("store.Load", zap.Error(err))
		}
		return fresh
	}
	if values == nil {
		values = Values{}
	}
	return &Session{Key: cookie.Value, values: values}
}
