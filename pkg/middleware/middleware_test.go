package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/catalog-service/pkg/auth"
	md "github.com/Astemirdum/catalog-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const loginURL = "/accounts/login/"

func newEcho(issuer *auth.Issuer) *echo.Echo {
	e := echo.New()
	e.Use(md.Authenticate(issuer))
	ok := func(c echo.Context) error {
		name, _ := auth.GetUserName(c.Request().Context())
		return c.String(http.StatusOK, name)
	}
	e.GET("/public", ok)
	e.GET("/mine", ok, md.LoginRequired(loginURL))
	e.GET("/borrowed", ok, md.RequirePermission(loginURL, "catalog.can_mark_returned"))
	return e
}

func TestGuards(t *testing.T) {
	t.Parallel()
	issuer := auth.NewIssuer("secret", time.Hour)
	reader, _, err := issuer.Issue(auth.Profile{UserID: 1, Username: "reader"})
	require.NoError(t, err)
	librarian, _, err := issuer.Issue(auth.Profile{UserID: 2, Username: "librarian", Permissions: []string{"catalog.can_mark_returned"}})
	require.NoError(t, err)

	tests := []struct {
		name         string
		path         string
		token        string
		cookie       string
		expectedCode int
		expectedBody string
		location     string
	}{
		{name: "public anonymous", path: "/public", expectedCode: http.StatusOK},
		{name: "login required anonymous", path: "/mine?page=2", expectedCode: http.StatusSeeOther, location: "/accounts/login/?next=%2Fmine%3Fpage%3D2"},
		{name: "login required reader", path: "/mine", token: reader, expectedCode: http.StatusOK, expectedBody: "reader"},
		{name: "login required cookie", path: "/mine", cookie: reader, expectedCode: http.StatusOK, expectedBody: "reader"},
		{name: "permission anonymous", path: "/borrowed", expectedCode: http.StatusSeeOther, location: "/accounts/login/?next=%2Fborrowed"},
		{name: "permission denied", path: "/borrowed", token: reader, expectedCode: http.StatusForbidden, expectedBody: `{"message":"permission denied"}`},
		{name: "permission granted", path: "/borrowed", token: librarian, expectedCode: http.StatusOK, expectedBody: "librarian"},
		{name: "bad bearer", path: "/public", token: "garbage", expectedCode: http.StatusUnauthorized, expectedBody: `{"message":"JwtAccessDenied"}`},
		{name: "bad cookie is dropped", path: "/public", cookie: "garbage", expectedCode: http.StatusOK},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEcho(issuer)
			r := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			if tt.token != "" {
				r.Header.Set(md.AuthorizationHeader, "Bearer "+tt.token)
			}
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: md.TokenCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.location != "" {
				require.Equal(t, tt.location, w.Header().Get(echo.HeaderLocation))
			}
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
			}
		})
	}
}
