package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
)

// BodyField collects errors about the request body as a whole.
const BodyField = "body"

var registerOnce sync.Once

// ConfigureValidator makes gin's validator report json/form tag names instead
// of Go struct field names and registers the notblank rule.
func ConfigureValidator() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	})
}

// BindError converts a gin binding failure into a 422 with per-field messages.
func BindError(err error) *apierr.Error {
	fields := FieldErrors{}

	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			fields.Add(fe.Field(), describe(fe))
		}
	case errors.As(err, &typeErr):
		name := typeErr.Field
		if name == "" {
			name = BodyField
		}
		fields.Add(name, fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		fields.Add(BodyField, "malformed JSON")
	case errors.Is(err, io.EOF):
		fields.Add(BodyField, "field required")
	default:
		fields.Add(BodyField, err.Error())
	}
	return apierr.Validation(fields)
}

// FieldErrors accumulates validation messages keyed by input name.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return apierr.Validation(f)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "notblank":
		return "must not be blank"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}
