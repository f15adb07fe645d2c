package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	md "github.com/Astemirdum/catalog-service/pkg/middleware"
	"github.com/Astemirdum/catalog-service/pkg/session"
	"github.com/Astemirdum/catalog-service/pkg/validate"
	_ "github.com/Astemirdum/catalog-service/swagger"
)

const (
	LoginURL = "/accounts/login/"

	routeIndex        = "index"
	routeBooks        = "books"
	routeBookDetail   = "book-detail"
	routeAuthors      = "authors"
	routeAuthorDetail = "author-detail"
	routeAllBorrowed  = "all-borrowed"
)

type Handler struct {
	svc        CatalogService
	log        *zap.Logger
	issuer     *auth.Issuer
	sessions   session.Store
	sessionCfg session.Config
	enqueuer   Enqueuer
	now        func() time.Time
}

type Option func(h *Handler)

func WithIssuer(issuer *auth.Issuer) Option {
	return func(h *Handler) {
		h.issuer = issuer
	}
}

// WithSessions enables cookie sessions backed by store.
func WithSessions(store session.Store, cfg session.Config) Option {
	return func(h *Handler) {
		h.sessions = store
		h.sessionCfg = cfg
	}
}

func WithEnqueuer(q Enqueuer) Option {
	return func(h *Handler) {
		h.enqueuer = q
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func New(svc CatalogService, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		svc:      svc,
		log:      log.Named("handler"),
		enqueuer: nopEnqueuer{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.issuer == nil {
		h.issuer = auth.NewIssuer("", 0)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator(validate.WithClock(h.now))

	siteMW := []echo.MiddlewareFunc{
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.Authenticate(h.issuer),
	}
	if h.sessions != nil {
		siteMW = append(siteMW, session.Middleware(h.sessions, h.sessionCfg, h.log))
	}
	site := e.Group("", siteMW...)
	site.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, c.Echo().Reverse(routeIndex))
	})

	accounts := site.Group("/accounts")
	accounts.GET("/login/", h.LoginPage)
	accounts.POST("/login/", h.Login)
	accounts.POST("/logout/", h.Logout)

	perm := func(codename string) echo.MiddlewareFunc {
		return md.RequirePermission(LoginURL, codename)
	}

	catalog := site.Group("/catalog")
	catalog.GET("/", h.Index).Name = routeIndex

	catalog.GET("/books/", h.ListBooks).Name = routeBooks
	catalog.GET("/book/:id", h.GetBook).Name = routeBookDetail
	catalog.GET("/book/create/", h.BookCreateForm, perm(model.PermAddBook))
	catalog.POST("/book/create/", h.CreateBook, perm(model.PermAddBook))
	catalog.GET("/book/:id/update/", h.BookUpdateForm, perm(model.PermChangeBook))
	catalog.POST("/book/:id/update/", h.UpdateBook, perm(model.PermChangeBook))
	// deleting a book is gated by the change capability, not a delete one
	catalog.GET("/book/:id/delete/", h.BookDeleteConfirm, perm(model.PermChangeBook))
	catalog.POST("/book/:id/delete/", h.DeleteBook, perm(model.PermChangeBook))

	catalog.GET("/authors/", h.ListAuthors).Name = routeAuthors
	catalog.GET("/author/:id", h.GetAuthor, perm(model.PermViewAuthor)).Name = routeAuthorDetail
	catalog.GET("/author/create/", h.AuthorCreateForm, perm(model.PermAddAuthor))
	catalog.POST("/author/create/", h.CreateAuthor, perm(model.PermAddAuthor))
	catalog.GET("/author/:id/update/", h.AuthorUpdateForm, perm(model.PermChangeAuthor))
	catalog.POST("/author/:id/update/", h.UpdateAuthor, perm(model.PermChangeAuthor))
	catalog.GET("/author/:id/delete/", h.AuthorDeleteConfirm, perm(model.PermDeleteAuthor))
	catalog.POST("/author/:id/delete/", h.DeleteAuthor, perm(model.PermDeleteAuthor))

	catalog.GET("/mybooks/", h.MyBooks, md.LoginRequired(LoginURL))
	catalog.GET("/borrowed/", h.AllBorrowed, perm(model.PermCanMarkReturned)).Name = routeAllBorrowed
	catalog.GET("/book/:id/renew/", h.RenewForm, perm(model.PermCanMarkReturned))
	catalog.POST("/book/:id/renew/", h.RenewBook, perm(model.PermCanMarkReturned))

	return e
}

// Health godoc
// @Summary      liveness probe
// @Tags         manage
// @Success      200  {string}  string  "OK"
// @Router       /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// pageParam reads the 1-based ?page= query value.
func pageParam(c echo.Context) (int, error) {
	p := c.QueryParam("page")
	if p == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(p)
	if err != nil || page < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	return page, nil
}

// idParam reads a numeric :id; anything else is treated as a missing record.
func idParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}

func (h *Handler) redirect(c echo.Context, route string, params ...interface{}) error {
	return c.Redirect(http.StatusSeeOther, c.Echo().Reverse(route, params...))
}
