// Package validators holds the shared request validation used by the
// per-area validator middlewares.
package validators

import (
	"fmt"
	"reflect"
	"strings"

	"prepcourse/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = fld.Tag.Get("query")
		}
		return name
	})
	return v
}

// Struct validates v and returns field -> message, or nil when v is valid.
// prefix namespaces the keys, e.g. "students[0]".
func Struct(v interface{}, prefix string) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": err.Error()}
	}

	errors := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Field()
		if prefix != "" {
			key = prefix + "." + key
		}
		errors[key] = message(fe)
	}
	return errors
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address!", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s!", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid!", field)
}

// RequireParams rejects requests whose named route params are blank.
func RequireParams(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		for _, name := range names {
			if strings.TrimSpace(c.Params(name)) == "" {
				errors[name] = name + " is required!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}

// ParseBody decodes a JSON body into dst and answers 400 on malformed input.
// ok is false when the response has already been written.
func ParseBody(c *fiber.Ctx, dst interface{}) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	return true, nil
}

// Merge combines validation maps, skipping nils.
func Merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
