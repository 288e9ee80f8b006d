package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/InduwaraRH/recipe-app-backend/pkg/response"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	// No comma or equals sign here: the set is spliced into a validator
	// tag and those characters would break tag parsing. The pipe is an OR
	// separator in tags, so it is escaped as 0x7C when spliced below.
	symbols = "!@#$%^&*()_+-.?/:;|~"
)

// Init configures the global validator used by Gin's binding.
// - Uses json/form/uri tag names in error paths.
// - Registers the password policy alias: minimum 6 characters with at least
//   one letter, one digit and one symbol.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form", "uri"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
		v.RegisterAlias("pwd", "min=6,containsany="+letters+",containsany="+digits+",containsany="+strings.ReplaceAll(symbols, "|", "0x7C"))
	}
}

// Issues converts validation/binding errors into `{path, message}` pairs.
// Every violation is reported, not just the first.
func Issues(err error) []response.Issue {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.Issue{{Path: "body", Message: "invalid json"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.Issue, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.Issue{Path: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}

	return []response.Issue{{Path: "body", Message: "invalid payload"}}
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "numeric":
		return "must be numeric"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + param + " characters long"
		}
		return "must be at least " + param
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + param + " characters long"
		}
		return "must be at most " + param
	case "containsany":
		return "must contain at least one of '" + param + "'"
	case "pwd":
		return "must be at least 6 characters with a letter, a digit and a symbol"
	default:
		if param != "" {
			return "failed '" + fe.Tag() + "=" + param + "'"
		}
		return "failed '" + fe.Tag() + "'"
	}
}
