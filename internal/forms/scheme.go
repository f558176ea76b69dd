package forms

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// nonSpaceRun is one or more characters that the browser does not treat as
// whitespace. RE2's \S alone lets no-break and other unicode spaces through.
const nonSpaceRun = `[^\s\x0B\p{Z}\x{FEFF}]+`

// same shape the storefront checks in the browser: something@something.something
var emailShape = regexp.MustCompile(nonSpaceRun + `@` + nonSpaceRun + `\.` + nonSpaceRun)

// isBrowserSpace reports whether the browser's String.trim strips r.
func isBrowserSpace(r rune) bool {
	return r == '\uFEFF' || (unicode.IsSpace(r) && r != '\u0085')
}

// notBlank fails strings that are empty once browser whitespace is trimmed.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimFunc(fl.Field().String(), isBrowserSpace) != ""
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}

	return v
}

// messages maps a field and the tag it failed on to the text shown next to
// the input.
var messages = map[string]map[string]string{
	FieldEmail: {
		"required":   "Email is required",
		"looseemail": "Email is invalid",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
	},
	FieldFirstname: {
		"notblank": "First name is required",
	},
	FieldLastname: {
		"notblank": "Last name is required",
	},
	FieldConfirmPassword: {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
}
