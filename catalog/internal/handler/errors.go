package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Astemirdum/catalog-service/catalog/internal/errs"
	"github.com/Astemirdum/catalog-service/pkg/validate"
)

const nonFieldErrors = "__all__"

func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrPageNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// FormResponse is the document behind every create/update/renew form.
type FormResponse struct {
	Form   any               `json:"form"`
	Errors map[string]string `json:"errors,omitempty"`
	Object any               `json:"object,omitempty"`
}

// invalidForm answers 422 with the submitted form and its field errors.
func invalidForm(c echo.Context, form, object any, fieldErrs map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, FormResponse{
		Form:   form,
		Errors: fieldErrs,
		Object: object,
	})
}

// validationErrors converts a Validate failure into field errors, or into an
// HTTP error when it is not a validation failure at all.
func validationErrors(err error) (map[string]string, error) {
	fieldErrs := validate.FieldErrors(err)
	if fieldErrs == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return fieldErrs, nil
}

// referenceField names the form field behind a dangling foreign key. Constraint
// names follow the postgres default <table>_<column>_fkey.
func referenceField(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "author_id"):
		return "author"
	case strings.Contains(msg, "language_id"):
		return "language"
	case strings.Contains(msg, "genre_id"):
		return "genre"
	}
	return nonFieldErrors
}
