package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	TagNotPast  = "notpast"
	TagMaxWeeks = "maxweeks"
)

var timeType = reflect.TypeOf(time.Time{})

type CustomValidator struct {
	validator *validator.Validate
	now       func() time.Time
}

type Option func(cv *CustomValidator)

// WithClock sets the clock the date tags compare against.
func WithClock(now func() time.Time) Option {
	return func(cv *CustomValidator) {
		cv.now = now
	}
}

func NewCustomValidator(opts ...Option) *CustomValidator {
	cv := &CustomValidator{
		validator: validator.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(cv)
	}
	cv.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// registration only fails on an empty tag or nil func
	_ = cv.validator.RegisterValidation(TagNotPast, cv.notPast)
	_ = cv.validator.RegisterValidation(TagMaxWeeks, cv.maxWeeks)
	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) today() time.Time {
	return calendarDay(cv.now())
}

func (cv *CustomValidator) notPast(fl validator.FieldLevel) bool {
	t, ok := asTime(fl.Field())
	if !ok {
		return false
	}
	return !calendarDay(t).Before(cv.today())
}

func (cv *CustomValidator) maxWeeks(fl validator.FieldLevel) bool {
	t, ok := asTime(fl.Field())
	if !ok {
		return false
	}
	weeks, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	limit := cv.today().AddDate(0, 0, 7*weeks)
	return !calendarDay(t).After(limit)
}

func asTime(v reflect.Value) (time.Time, bool) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return time.Time{}, false
		}
		v = v.Elem()
	}
	if !v.Type().ConvertibleTo(timeType) {
		return time.Time{}, false
	}
	t, ok := v.Convert(timeType).Interface().(time.Time)
	return t, ok
}

// calendarDay keeps the wall-clock date of t and pins it to midnight UTC,
// so days from different locations compare as plain dates.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var messages = map[string]func(fe validator.FieldError) string{
	"required": func(validator.FieldError) string { return "This field is required." },
	"max": func(fe validator.FieldError) string {
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	},
	"min": func(fe validator.FieldError) string {
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	},
	TagNotPast: func(validator.FieldError) string { return "Invalid date - renewal in past" },
	TagMaxWeeks: func(fe validator.FieldError) string {
		return fmt.Sprintf("Invalid date - renewal more than %s weeks ahead", fe.Param())
	},
}

// FieldErrors flattens validator errors into field -> message, keyed by json name.
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, ok := out[fe.Field()]; ok {
			continue
		}
		if msg, ok := messages[fe.Tag()]; ok {
			out[fe.Field()] = msg(fe)
			continue
		}
		out[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
	return out
}
