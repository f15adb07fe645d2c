package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	md "github.com/Astemirdum/catalog-service/pkg/middleware"
)

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Next      string `json:"next"`
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, FormResponse{Form: model.LoginForm{Next: c.QueryParam("next")}})
}

// Login godoc
// @Summary      log in; sets the token cookie and returns to next
// @Tags         accounts
// @Accept       json,x-www-form-urlencoded
// @Param        form  body      model.LoginForm  true  "credentials"
// @Success      200   {object}  TokenResponse
// @Success      303   {string}  string  "See Other"
// @Failure      422   {object}  FormResponse
// @Router       /accounts/login/ [post]
func (h *Handler) Login(c echo.Context) error {
	var form model.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if form.Next == "" {
		form.Next = c.QueryParam("next")
	}
	if err := c.Validate(form); err != nil {
		fieldErrs, err := validationErrors(err)
		if err != nil {
			return err
		}
		return invalidForm(c, model.LoginForm{Username: form.Username, Next: form.Next}, nil, fieldErrs)
	}

	user, err := h.svc.Authenticate(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return invalidForm(c, model.LoginForm{Username: form.Username, Next: form.Next}, nil,
				map[string]string{nonFieldErrors: err.Error()})
		}
		return httpError(err)
	}
	token, expiresAt, err := h.issuer.Issue(auth.Profile{
		UserID:      user.ID,
		Username:    user.Username,
		Superuser:   user.IsSuperuser,
		Permissions: user.Permissions,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.log.Info("login", zap.String("username", user.Username))

	c.SetCookie(&http.Cookie{
		Name:     md.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	next := safeNext(form.Next, c.Echo().Reverse(routeIndex))
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, TokenResponse{
			Token:     token,
			ExpiresAt: expiresAt.UTC().Format(http.TimeFormat),
			Next:      next,
		})
	}
	return c.Redirect(http.StatusSeeOther, next)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{Name: md.TokenCookie, Path: "/", MaxAge: -1})
	return h.redirect(c, routeIndex)
}

// safeNext only follows local paths.
func safeNext(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, `/\`) {
		return fallback
	}
	return next
}
