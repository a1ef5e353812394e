package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devconnector/devconnector-api/pkg/response"
)

// Init configures the global validator used by Gin's binding.
// Error messages are keyed by JSON tag names so the wire shape matches what
// the front end already displays.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// labels maps JSON field names to the human label used in error messages,
// for the fields whose label is not just the capitalized name.
var labels = map[string]string{
	"from":         "From date",
	"fieldofstudy": "Field of study",
}

func label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ToErrors converts binding/validation failures into the structured error
// list the API returns with status 400.
func ToErrors(err error) []response.FieldError {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.FieldError{{Msg: "Invalid JSON payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.FieldError{Msg: message(fe), Param: fe.Field()})
		}
		return out
	}

	return []response.FieldError{{Msg: "Invalid payload"}}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return label(field) + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		if field == "password" {
			return "Please enter a password with " + fe.Param() + " or more characters"
		}
		return label(field) + " must be at least " + fe.Param() + " characters long"
	case "max":
		return label(field) + " must be at most " + fe.Param() + " characters long"
	case "url":
		return label(field) + " must be a valid URL"
	default:
		return label(field) + " is invalid"
	}
}
