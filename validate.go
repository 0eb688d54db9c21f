package environment

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrInvalidConfig is returned by Validate if a Config can not be used by the frontend.
var ErrInvalidConfig = errors.New("invalid environment configuration")

// Validate checks that all values are present and the URLs are absolute.
// A Config is never validated implicitly, call Validate before bundling it.
func (c Config) Validate() error {
	violations := c.Violations()
	if len(violations) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(violations, "; "))
}

// Violations returns one line per invalid value of c,
// it is empty for a valid Config.
func (c Config) Violations() []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(configValidator().Struct(c), &validationErrs) {
		return []string{}
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, describe(fe))
	}

	return msgs
}

func describe(fe validator.FieldError) string {
	key := fe.Namespace()
	if _, after, found := strings.Cut(key, "."); found {
		key = after // drop the struct name: Config.auth0.url => auth0.url
	}

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "notblank":
		return key + " is blank"
	case "absurl":
		return fmt.Sprintf("%s is not an absolute URL: %q", key, fe.Value())
	case "hostname":
		return fmt.Sprintf("%s is not a host name: %q", key, fe.Value())
	case "baseurl":
		return fmt.Sprintf("%s must not have a query or fragment: %q", key, fe.Value())
	case "tenantprefix":
		return fmt.Sprintf("%s is the tenant prefix without %s: %q", key, auth0Suffix, fe.Value())
	default:
		return fmt.Sprintf("%s failed on %s", key, fe.Tag())
	}
}

var configValidator = sync.OnceValue(func() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report the keys as they appear in the environment file.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	_ = validate.RegisterValidation("absurl", isAbsoluteURL)
	_ = validate.RegisterValidation("baseurl", isBaseURL)
	_ = validate.RegisterValidation("tenantprefix", isTenantPrefix)

	return validate
})

func isAbsoluteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	return u.IsAbs() && u.Host != ""
}

// isBaseURL reports whether paths can be appended to the URL.
func isBaseURL(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "?#")
}

// isTenantPrefix rejects full tenant hosts, Domain appends the suffix itself.
func isTenantPrefix(fl validator.FieldLevel) bool {
	return !strings.HasSuffix(strings.ToLower(fl.Field().String()), auth0Suffix)
}
