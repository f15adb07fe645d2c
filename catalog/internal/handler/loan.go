package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/auth"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
)

// MyBooks godoc
// @Summary      copies on loan to the caller, soonest due first
// @Tags         loans
// @Produce      json
// @Param        page  query     int  false  "page number"
// @Success      200   {object}  model.ListBookInstances
// @Router       /catalog/mybooks/ [get]
func (h *Handler) MyBooks(c echo.Context) error {
	ctx := c.Request().Context()
	profile, ok := auth.FromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBorrowedByUser(ctx, profile.UserID, page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// AllBorrowed godoc
// @Summary      every copy on loan, soonest due first
// @Tags         loans
// @Produce      json
// @Param        page  query     int  false  "page number"
// @Success      200   {object}  model.ListBookInstances
// @Failure      403   {object}  echo.HTTPError
// @Router       /catalog/borrowed/ [get]
func (h *Handler) AllBorrowed(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBorrowed(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) bookInstance(c echo.Context) (model.BookInstance, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return model.BookInstance{}, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	bi, err := h.svc.GetBookInstance(c.Request().Context(), id)
	if err != nil {
		return model.BookInstance{}, httpError(err)
	}
	return bi, nil
}

// RenewForm godoc
// @Summary      renewal form proposing a due date three weeks ahead
// @Tags         loans
// @Produce      json
// @Param        id   path      string  true  "book instance id"
// @Success      200  {object}  FormResponse
// @Router       /catalog/book/{id}/renew/ [get]
func (h *Handler) RenewForm(c echo.Context) error {
	bi, err := h.bookInstance(c)
	if err != nil {
		return err
	}
	proposed := h.svc.ProposedRenewalDate()
	return c.JSON(http.StatusOK, FormResponse{
		Form:   model.RenewBookForm{RenewalDate: &proposed},
		Object: bi,
	})
}

// RenewBook godoc
// @Summary      renew a loan
// @Tags         loans
// @Accept       json,x-www-form-urlencoded
// @Param        id    path  string               true  "book instance id"
// @Param        form  body  model.RenewBookForm  true  "new due date"
// @Success      303  {string}  string  "See Other"
// @Failure      422  {object}  FormResponse
// @Router       /catalog/book/{id}/renew/ [post]
func (h *Handler) RenewBook(c echo.Context) error {
	bi, err := h.bookInstance(c)
	if err != nil {
		return err
	}
	var form model.RenewBookForm
	if err = c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.Normalize()
	if err = c.Validate(form); err != nil {
		fieldErrs, err := validationErrors(err)
		if err != nil {
			return err
		}
		return invalidForm(c, form, bi, fieldErrs)
	}
	if err = h.svc.RenewBookInstance(c.Request().Context(), bi.ID, *form.RenewalDate); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.EventLoanRenewed, bi.ID.String(), form)
	return h.redirect(c, routeAllBorrowed)
}
