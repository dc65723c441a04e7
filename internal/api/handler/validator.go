package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// fieldErrors lists the rejected fields of a request by their wire names,
// e.g. "price is required".
type fieldErrors []string

func (fe fieldErrors) Error() string { return strings.Join(fe, "; ") }

type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the echo.Validator used by both services. Field names
// in errors come from the json or form tag.
func NewValidator() echo.Validator {
	v := validator.New()
	v.RegisterTagNameFunc(wireName)
	return &requestValidator{v: v}
}

func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := make(fieldErrors, 0, len(ve))
	for _, fe := range ve {
		if fe.Tag() == "required" {
			out = append(out, fe.Field()+" is required")
			continue
		}
		out = append(out, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
	}
	return out
}

func wireName(f reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
