package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/catalog-service/catalog/internal/model"
	"github.com/Astemirdum/catalog-service/pkg/kafka"
)

// ListAuthors godoc
// @Summary      list authors
// @Tags         authors
// @Produce      json
// @Param        page  query     int  false  "page number"
// @Success      200   {object}  model.ListAuthors
// @Router       /catalog/authors/ [get]
func (h *Handler) ListAuthors(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}
	list, err := h.svc.ListAuthors(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// GetAuthor godoc
// @Summary      author detail with their books
// @Tags         authors
// @Produce      json
// @Param        id   path      int  true  "author id"
// @Success      200  {object}  model.AuthorDetail
// @Router       /catalog/author/{id} [get]
func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	author, err := h.svc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, author)
}

func (h *Handler) AuthorCreateForm(c echo.Context) error {
	return c.JSON(http.StatusOK, FormResponse{Form: model.NewAuthorForm()})
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	form, err := h.bindAuthorForm(c)
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
	id, err := h.svc.CreateAuthor(c.Request().Context(), form)
	if err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.EventAuthorCreated, strconv.Itoa(id), form)
	return h.redirect(c, routeAuthorDetail, id)
}

func (h *Handler) AuthorUpdateForm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	author, err := h.svc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, FormResponse{Form: model.AuthorFormFrom(author.Author), Object: author.Author})
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	form, err := h.bindAuthorForm(c)
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
	if err = h.svc.UpdateAuthor(c.Request().Context(), id, form); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.EventAuthorUpdated, strconv.Itoa(id), form)
	return h.redirect(c, routeAuthors)
}

func (h *Handler) AuthorDeleteConfirm(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	author, err := h.svc.GetAuthor(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, FormResponse{Object: author.Author})
}

// DeleteAuthor godoc
// @Summary      delete an author; their books keep no author
// @Tags         authors
// @Param        id   path  int  true  "author id"
// @Success      303  {string}  string  "See Other"
// @Router       /catalog/author/{id}/delete/ [post]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	if err = h.svc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	h.publish(c, kafka.EventAuthorDeleted, strconv.Itoa(id), nil)
	return h.redirect(c, routeAuthors)
}

func (h *Handler) bindAuthorForm(c echo.Context) (model.AuthorForm, error) {
	var form model.AuthorForm
	if err := c.Bind(&form); err != nil {
		return model.AuthorForm{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	form.Normalize()
	return form, nil
}
