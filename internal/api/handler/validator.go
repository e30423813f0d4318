package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mockshop/commerce-api/internal/pkg/httperr"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures surface as a 422 httperr.Error carrying one {path, message} issue
// per violated constraint, in field declaration order.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	// Report json field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	issues := make([]httperr.FieldIssue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, httperr.FieldIssue{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return httperr.Validation(issues)
}

// fieldPath strips the root struct name from the error namespace, leaving
// paths like "items[0].productId".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// fieldMessage converts a single constraint violation into a human-readable
// message. The field name lives in the issue path, not the message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		default:
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

// malformedBody is returned when the request body cannot be decoded at all.
func malformedBody() *httperr.Error {
	return httperr.Validation([]httperr.FieldIssue{
		{Path: "", Message: "malformed request body"},
	})
}
