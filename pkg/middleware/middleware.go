package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const (
	AuthorizationHeader = "Authorization"
	TokenCookie         = "catalog_token"
	bearer              = "Bearer "
)

// Authenticate resolves the caller from a bearer header or the token cookie.
// Requests without credentials pass through anonymously.
func Authenticate(issuer *auth.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenStr, fromCookie := extractToken(c)
			if tokenStr == "" {
				return next(c)
			}
			claims, err := issuer.Parse(tokenStr)
			if err != nil {
				if fromCookie {
					// a stale cookie must not lock the browser out of public pages
					c.SetCookie(&http.Cookie{Name: TokenCookie, Path: "/", MaxAge: -1})
					return next(c)
				}
				if errors.Is(err, auth.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "TokenExpired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "JwtAccessDenied")
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.SetAuthContext(req.Context(), claims.Profile)))
			return next(c)
		}
	}
}

func extractToken(c echo.Context) (token string, fromCookie bool) {
	if authorization := c.Request().Header.Get(AuthorizationHeader); strings.HasPrefix(authorization, bearer) {
		return strings.TrimPrefix(authorization, bearer), false
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}

// LoginRequired redirects anonymous callers to loginURL?next=<requested uri>.
func LoginRequired(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsAuthenticated(c.Request().Context()) {
				return redirectToLogin(c, loginURL)
			}
			return next(c)
		}
	}
}

// RequirePermission guards a route with a capability. Anonymous callers are sent
// to the login page, authenticated callers without the capability get 403.
func RequirePermission(loginURL, codename string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return redirectToLogin(c, loginURL)
			}
			if !profile.HasPerm(codename) {
				return echo.NewHTTPError(http.StatusForbidden, "permission denied")
			}
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context, loginURL string) error {
	q := url.Values{"next": {c.Request().URL.RequestURI()}}
	return c.Redirect(http.StatusSeeOther, loginURL+"?"+q.Encode())
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}
