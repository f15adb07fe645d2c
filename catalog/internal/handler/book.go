package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
)

// ListBooks godoc
// @Summary      list books
// @Tags         books
// @Produce      json
// @Param        page  query     int  false  "page number"
// @Success      200   {object}  model.ListBooks
// @Failure      404   {object}  echo.HTTPError
// @Router       /catalog/books/ [get]
func (h *Handler) ListBooks(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListBooks(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetBook godoc
// @Summary      book detail with its copies
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "book id"
// @Success      200  {object}  model.BookDetail
// @Failure      404  {object}  echo.HTTPError
// @Router       /catalog/book/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) BookCreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, FormResponse{Form: model.NewBookForm()})
}

// CreateBook godoc
// @Summary      create a book
// @Tags         books
// @Accept       json,x-www-form-urlencoded
// @Param        form  body  model.BookForm  true  "book"
// @Success      303  {string}  string  "See Other"
// @Failure      422   {object}  FormResponse
// @Router       /catalog/book/create/ [post]
func (h *Handler) CreateBook(c echo.Context) error {
	form, err := h.bindBookForm(c)
	if err != nil {
		return err
	}
	if err = c.Validate(form); err != nil {
		fieldErrs, err := validationErrors(err)
		if err != nil {
			return err
		}
		return invalidForm(c, form, nil, fieldErrs)
	}
	ctx := c.Request().Context()
	id, err := h.svc.CreateBook(ctx, form)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidReference) {
			return invalidForm(c, form, nil, map[string]string{referenceField(err): err.Error()})
		}
		return httpError(err)
	}
	h.publish(c, kafka.EventBookCreated, strconv.Itoa(id), form)
	return h.redirect(c, routeBookDetail, id)
}

func (h *Handler) BookUpdateForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, FormResponse{Form: model.BookFormFrom(book), Object: book.Book})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	form, err := h.bindBookForm(c)
	if err != nil {
		return err
	}
	if err = c.Validate(form); err != nil {
		fieldErrs, err := validationErrors(err)
		if err != nil {
			return err
		}
		return invalidForm(c, form, nil, fieldErrs)
	}
	if err = h.svc.UpdateBook(c.Request().Context(), id, form); err != nil {
		if errors.Is(err, errs.ErrInvalidReference) {
			return invalidForm(c, form, nil, map[string]string{referenceField(err): err.Error()})
		}
		return httpError(err)
	}
	h.publish(c, kafka.EventBookUpdated, strconv.Itoa(id), form)
	return h.redirect(c, routeBooks)
}

func (h *Handler) BookDeleteConfirm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, FormResponse{Object: book.Book})
}

// DeleteBook godoc
// @Summary      delete a book
// @Tags         books
// @Param        id   path  int  true  "book id"
// @Success      303  {string}  string  "See Other"
// @Failure      403  {object}  echo.HTTPError
// @Failure      409  {object}  echo.HTTPError
// @Router       /catalog/book/{id}/delete/ [post]
func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err = h.svc.DeleteBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.EventBookDeleted, strconv.Itoa(id), nil)
	return h.redirect(c, routeBooks)
}

func (h *Handler) bindBookForm(c echo.Context) (model.BookForm, error) {
	var form model.BookForm
	if err := c.Bind(&form); err != nil {
		return model.BookForm{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.Normalize()
	return form, nil
}
