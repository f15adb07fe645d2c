package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/handler"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/Astemirdum/catalog-service/pkg/session"

	service_mocks "github.com/Astemirdum/catalog-service/catalog/internal/handler/mocks"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

const testKey = "test-signing-key"

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

func newRouter(t *testing.T, opts ...handler.Option) (*echo.Echo, *service_mocks.MockCatalogService) {
	t.Helper()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockCatalogService(c)
	opts = append([]handler.Option{
		handler.WithIssuer(auth.NewIssuer(testKey, time.Hour)),
		handler.WithClock(func() time.Time { return fixedNow }),
	}, opts...)
	h := handler.New(svc, zap.NewNop(), opts...)
	return h.NewRouter(), svc
}

func bearer(t *testing.T, perms ...string) string {
	t.Helper()
	token, _, err := auth.NewIssuer(testKey, time.Hour).Issue(auth.Profile{
		UserID:      7,
		Username:    "librarian",
		Permissions: perms,
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func formRequest(method, target string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return r
}

func TestHandler_Index_VisitCounter(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t, handler.WithSessions(&memStore{data: map[string]session.Values{}},
		session.Config{CookieName: "sessionid", TTL: time.Hour}))
	svc.EXPECT().Stats(gomock.Any()).Return(model.Stats{
		HeadTitle:             model.HeadTitle,
		NumBooks:              4,
		NumInstances:          9,
		NumInstancesAvailable: 2,
		NumAuthors:            3,
		InumGenre:             2,
		InumBooks:             1,
	}, nil).Times(2)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"head_title":"Local Library","num_books":4,"num_instances":9,"num_instances_available":2,"num_authors":3,"inum_genre":2,"inum_books":1,"num_visits":0}`,
		strings.Trim(w.Body.String(), "\n"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "sessionid", cookies[0].Name)

	r := httptest.NewRequest(http.MethodGet, "/catalog/", http.NoBody)
	r.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"num_visits":1`)
}

func TestHandler_RootRedirect(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	require.Equal(t, http.StatusMovedPermanently, w.Code)
	require.Equal(t, "/catalog/", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_RenewBook(t *testing.T) {
	t.Parallel()
	instanceID := uuid.MustParse("7a1f3a0e-5a0a-4a8e-9d8f-0c5f8e3c2b11")
	due := model.NewDate(2024, time.March, 12)
	instance := model.BookInstance{
		ID:        instanceID,
		BookID:    1,
		BookTitle: "Dom Casmurro",
		DueBack:   &due,
		Status:    model.StatusOnLoan,
	}

	type response struct {
		expectedCode     int
		expectedLocation string
		bodyContains     string
	}
	tests := []struct {
		name         string
		auth         string
		renewalDate  string
		mockBehavior func(r *service_mocks.MockCatalogService)
		response     response
	}{
		{
			name:        "ok. one week ahead",
			auth:        bearer(t, model.PermCanMarkReturned),
			renewalDate: "2024-03-17",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
				r.EXPECT().RenewBookInstance(gomock.Any(), instanceID, model.NewDate(2024, time.March, 17)).Return(nil)
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/catalog/borrowed/"},
		},
		{
			name:        "ok. exactly four weeks",
			auth:        bearer(t, model.PermCanMarkReturned),
			renewalDate: "2024-04-07",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
				r.EXPECT().RenewBookInstance(gomock.Any(), instanceID, model.NewDate(2024, time.April, 7)).Return(nil)
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/catalog/borrowed/"},
		},
		{
			name:        "err. date in past",
			auth:        bearer(t, model.PermCanMarkReturned),
			renewalDate: "2024-03-09",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				bodyContains: `"errors":{"renewal_date":"Invalid date - renewal in past"}`,
			},
		},
		{
			name:        "err. more than four weeks",
			auth:        bearer(t, model.PermCanMarkReturned),
			renewalDate: "2024-04-08",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				bodyContains: `"errors":{"renewal_date":"Invalid date - renewal more than 4 weeks ahead"}`,
			},
		},
		{
			name:        "err. missing date",
			auth:        bearer(t, model.PermCanMarkReturned),
			renewalDate: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				bodyContains: `"errors":{"renewal_date":"This field is required."}`,
			},
		},
		{
			name:         "err. no capability",
			auth:         bearer(t, model.PermAddBook),
			renewalDate:  "2024-03-17",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response:     response{expectedCode: http.StatusForbidden},
		},
		{
			name:         "err. anonymous",
			auth:         "",
			renewalDate:  "2024-03-17",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/accounts/login/?next=%2Fcatalog%2Fbook%2F" + instanceID.String() + "%2Frenew%2F",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := formRequest(http.MethodPost, "/catalog/book/"+instanceID.String()+"/renew/",
				url.Values{"renewal_date": {tt.renewalDate}})
			if tt.auth != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			if tt.response.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.response.bodyContains)
			}
		})
	}
}

func TestHandler_RenewBook_ServerLocation(t *testing.T) {
	t.Parallel()
	instanceID := uuid.New()
	instance := model.BookInstance{ID: instanceID, BookID: 1, Status: model.StatusOnLoan}

	clocks := []struct {
		name string
		now  time.Time
	}{
		{name: "west of utc", now: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))},
		{name: "east of utc", now: time.Date(2024, time.March, 10, 9, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60))},
	}
	tests := []struct {
		name         string
		renewalDate  string
		expectedCode int
		renewed      *model.Date
		bodyContains string
	}{
		{name: "today", renewalDate: "2024-03-10", expectedCode: http.StatusSeeOther, renewed: ptr(model.NewDate(2024, time.March, 10))},
		{name: "exactly four weeks", renewalDate: "2024-04-07", expectedCode: http.StatusSeeOther, renewed: ptr(model.NewDate(2024, time.April, 7))},
		{
			name:         "yesterday",
			renewalDate:  "2024-03-09",
			expectedCode: http.StatusUnprocessableEntity,
			bodyContains: `"errors":{"renewal_date":"Invalid date - renewal in past"}`,
		},
		{
			name:         "four weeks and a day",
			renewalDate:  "2024-04-08",
			expectedCode: http.StatusUnprocessableEntity,
			bodyContains: `"errors":{"renewal_date":"Invalid date - renewal more than 4 weeks ahead"}`,
		},
	}
	for _, clock := range clocks {
		clock := clock
		for _, tt := range tests {
			tt := tt
			t.Run(clock.name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				e, svc := newRouter(t, handler.WithClock(func() time.Time { return clock.now }))
				svc.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(instance, nil)
				if tt.renewed != nil {
					svc.EXPECT().RenewBookInstance(gomock.Any(), instanceID, *tt.renewed).Return(nil)
				}

				r := formRequest(http.MethodPost, "/catalog/book/"+instanceID.String()+"/renew/",
					url.Values{"renewal_date": {tt.renewalDate}})
				r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermCanMarkReturned))
				w := httptest.NewRecorder()
				e.ServeHTTP(w, r)

				require.Equal(t, tt.expectedCode, w.Code)
				if tt.bodyContains != "" {
					require.Contains(t, w.Body.String(), tt.bodyContains)
				}
			})
		}
	}
}

func ptr[T any](v T) *T { return &v }

func TestHandler_RenewForm(t *testing.T) {
	t.Parallel()
	instanceID := uuid.New()
	e, svc := newRouter(t)
	svc.EXPECT().GetBookInstance(gomock.Any(), instanceID).Return(model.BookInstance{ID: instanceID}, nil)
	svc.EXPECT().ProposedRenewalDate().Return(model.NewDate(2024, time.March, 31))

	r := httptest.NewRequest(http.MethodGet, "/catalog/book/"+instanceID.String()+"/renew/", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermCanMarkReturned))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"form":{"renewal_date":"2024-03-31"}`)
}

func TestHandler_RenewForm_UnknownInstance(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	svc.EXPECT().GetBookInstance(gomock.Any(), gomock.Any()).Return(model.BookInstance{}, errs.ErrNotFound)

	for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
		r := httptest.NewRequest(http.MethodGet, "/catalog/book/"+id+"/renew/", http.NoBody)
		r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermCanMarkReturned))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestHandler_DeleteBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode     int
		expectedLocation string
		expectedBody     string
	}
	tests := []struct {
		name         string
		auth         string
		mockBehavior func(r *service_mocks.MockCatalogService)
		response     response
	}{
		{
			name: "ok",
			auth: bearer(t, model.PermChangeBook),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().DeleteBook(gomock.Any(), 1).Return(nil)
			},
			response: response{expectedCode: http.StatusSeeOther, expectedLocation: "/catalog/books/"},
		},
		{
			name:         "err. without change_book",
			auth:         bearer(t, model.PermAddBook, model.PermDeleteAuthor),
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response:     response{expectedCode: http.StatusForbidden, expectedBody: `{"message":"permission denied"}`},
		},
		{
			name:         "err. anonymous",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			response: response{
				expectedCode:     http.StatusSeeOther,
				expectedLocation: "/accounts/login/?next=%2Fcatalog%2Fbook%2F1%2Fdelete%2F",
			},
		},
		{
			name: "err. book has copies",
			auth: bearer(t, model.PermChangeBook),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().DeleteBook(gomock.Any(), 1).Return(errors.Wrap(errs.ErrConflict, "book_instance_book_id_fkey"))
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book_instance_book_id_fkey: record is referenced by other records"}`,
			},
		},
		{
			name: "err. not found",
			auth: bearer(t, model.PermChangeBook),
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().DeleteBook(gomock.Any(), 1).Return(errs.ErrNotFound)
			},
			response: response{expectedCode: http.StatusNotFound, expectedBody: `{"message":"not found"}`},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := formRequest(http.MethodPost, "/catalog/book/1/delete/", url.Values{})
			if tt.auth != "" {
				r.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedLocation, w.Header().Get(echo.HeaderLocation))
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	author, lang := 3, 1
	tests := []struct {
		name             string
		values           url.Values
		mockBehavior     func(r *service_mocks.MockCatalogService)
		expectedCode     int
		expectedLocation string
		bodyContains     string
	}{
		{
			name: "ok",
			values: url.Values{
				"title": {"Dom Casmurro"}, "author": {"3"}, "summary": {"Bentinho"},
				"isbn": {"9788535910667"}, "language": {"1"}, "genre": {"2", "4"},
			},
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().CreateBook(gomock.Any(), model.BookForm{
					Title:      "Dom Casmurro",
					AuthorID:   &author,
					Summary:    "Bentinho",
					ISBN:       "9788535910667",
					LanguageID: &lang,
					GenreIDs:   []int{2, 4},
				}).Return(12, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/catalog/book/12",
		},
		{
			name:             "err. title required",
			values:           url.Values{"summary": {"no title"}},
			mockBehavior:     func(r *service_mocks.MockCatalogService) {},
			expectedCode:     http.StatusUnprocessableEntity,
			bodyContains:     `"errors":{"title":"This field is required."}`,
			expectedLocation: "",
		},
		{
			name:   "err. unknown author",
			values: url.Values{"title": {"Orphan"}, "author": {"99"}},
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().CreateBook(gomock.Any(), gomock.Any()).
					Return(0, errors.Wrap(errs.ErrInvalidReference, "book_author_id_fkey"))
			},
			expectedCode: http.StatusUnprocessableEntity,
			bodyContains: `"errors":{"author":"book_author_id_fkey: referenced record does not exist"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			r := formRequest(http.MethodPost, "/catalog/book/create/", tt.values)
			r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermAddBook))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedLocation, w.Header().Get(echo.HeaderLocation))
			if tt.bodyContains != "" {
				require.Contains(t, w.Body.String(), tt.bodyContains)
			}
		})
	}
}

func TestHandler_FormDefaults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		target       string
		perm         string
		bodyContains string
	}{
		{
			name:         "book language",
			target:       "/catalog/book/create/",
			perm:         model.PermAddBook,
			bodyContains: `"language":1`,
		},
		{
			name:         "author date of death",
			target:       "/catalog/author/create/",
			perm:         model.PermAddAuthor,
			bodyContains: `"date_of_death":"2018-01-05"`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, _ := newRouter(t)
			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderAuthorization, bearer(t, tt.perm))
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusOK, w.Code)
			require.Contains(t, w.Body.String(), tt.bodyContains)
		})
	}
}

func TestHandler_UpdateAuthor(t *testing.T) {
	t.Parallel()
	e, svc := newRouter(t)
	born := model.NewDate(1839, time.June, 21)
	svc.EXPECT().UpdateAuthor(gomock.Any(), 5, model.AuthorForm{
		FirstName:   "Joaquim",
		LastName:    "Machado de Assis",
		DateOfBirth: &born,
	}).Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/catalog/author/5/update/",
		strings.NewReader(`{"first_name":"Joaquim","last_name":"Machado de Assis","date_of_birth":"1839-06-21","date_of_death":""}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermChangeAuthor))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/catalog/authors/", w.Header().Get(echo.HeaderLocation))
}

func TestHandler_AuthorDetail_RequiresViewAuthor(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	r := httptest.NewRequest(http.MethodGet, "/catalog/author/1", http.NoBody)
	r.Header.Set(echo.HeaderAuthorization, bearer(t, model.PermChangeAuthor))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListBooks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		query        string
		mockBehavior func(r *service_mocks.MockCatalogService)
		expectedCode int
		expectedBody string
	}{
		{
			name:  "ok",
			query: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().ListBooks(gomock.Any(), 1).Return(model.ListBooks{
					Paging: model.NewPaging(1, model.PageSize, 1),
					Items:  []model.Book{{ID: 1, Title: "Dom Casmurro", AuthorName: "Assis, Machado"}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"numPages":1,"items":[{"id":1,"title":"Dom Casmurro","summary":"","isbn":"","author_id":null,"author":"Assis, Machado","language_id":null}]}`,
		},
		{
			name:         "err. bad page",
			query:        "?page=abc",
			mockBehavior: func(r *service_mocks.MockCatalogService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid page"}`,
		},
		{
			name:  "err. page past the end",
			query: "?page=3",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().ListBooks(gomock.Any(), 3).Return(model.ListBooks{}, errs.ErrPageNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"invalid page"}`,
		},
		{
			name:  "err. internal",
			query: "",
			mockBehavior: func(r *service_mocks.MockCatalogService) {
				r.EXPECT().ListBooks(gomock.Any(), 1).Return(model.ListBooks{}, errors.New("db internal"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"db internal"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, svc := newRouter(t)
			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/books/"+tt.query, http.NoBody))

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_MyBooks(t *testing.T) {
	t.Parallel()
	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalog/mybooks/", http.NoBody))
		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/accounts/login/?next=%2Fcatalog%2Fmybooks%2F", w.Header().Get(echo.HeaderLocation))
	})
	t.Run("own loans", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().ListBorrowedByUser(gomock.Any(), 7, 1).
			Return(model.ListBookInstances{Paging: model.NewPaging(1, model.PageSize, 0)}, nil)

		r := httptest.NewRequest(http.MethodGet, "/catalog/mybooks/", http.NoBody)
		r.Header.Set(echo.HeaderAuthorization, bearer(t))
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("bad token", func(t *testing.T) {
		t.Parallel()
		e, _ := newRouter(t)
		r := httptest.NewRequest(http.MethodGet, "/catalog/mybooks/", http.NoBody)
		r.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	user := model.User{ID: 7, Username: "librarian", Permissions: []string{model.PermCanMarkReturned}}

	t.Run("form login redirects to next", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Authenticate(gomock.Any(), "librarian", "s3cret").Return(user, nil)

		r := formRequest(http.MethodPost, "/accounts/login/",
			url.Values{"username": {"librarian"}, "password": {"s3cret"}, "next": {"/catalog/borrowed/"}})
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/catalog/borrowed/", w.Header().Get(echo.HeaderLocation))
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "catalog_token", cookies[0].Name)

		// the issued cookie opens the guarded page
		svc.EXPECT().ListBorrowed(gomock.Any(), 1).
			Return(model.ListBookInstances{Paging: model.NewPaging(1, model.PageSize, 0)}, nil)
		r = httptest.NewRequest(http.MethodGet, "/catalog/borrowed/", http.NoBody)
		r.AddCookie(cookies[0])
		w = httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
	})
	t.Run("foreign next is ignored", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Authenticate(gomock.Any(), "librarian", "s3cret").Return(user, nil)

		r := formRequest(http.MethodPost, "/accounts/login/?next=//evil.example/",
			url.Values{"username": {"librarian"}, "password": {"s3cret"}})
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusSeeOther, w.Code)
		require.Equal(t, "/catalog/", w.Header().Get(echo.HeaderLocation))
	})
	t.Run("json login returns token", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Authenticate(gomock.Any(), "librarian", "s3cret").Return(user, nil)

		r := httptest.NewRequest(http.MethodPost, "/accounts/login/",
			strings.NewReader(`{"username":"librarian","password":"s3cret"}`))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"token":"`)
		require.Contains(t, w.Body.String(), `"next":"/catalog/"`)
	})
	t.Run("bad credentials", func(t *testing.T) {
		t.Parallel()
		e, svc := newRouter(t)
		svc.EXPECT().Authenticate(gomock.Any(), "librarian", "nope").Return(model.User{}, errs.ErrInvalidCredentials)

		r := formRequest(http.MethodPost, "/accounts/login/",
			url.Values{"username": {"librarian"}, "password": {"nope"}})
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.Contains(t, w.Body.String(), `"__all__":"please enter a correct username and password"`)
		require.Empty(t, w.Result().Cookies())
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e, _ := newRouter(t)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/manage/health", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
