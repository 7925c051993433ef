// Package validate wraps a shared go-playground validator configured with
// the card-specific rules (hex colors, font lists, logo data URLs). Errors
// come back as apperror validation errors naming the JSON field.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
	"github.com/keyxmakerx/cardstudio/internal/cardstyle"
	"github.com/keyxmakerx/cardstudio/internal/sanitize"
)

// MaxLogoBytes is the largest decoded logo accepted by the "logo" rule.
const MaxLogoBytes = 512 << 10

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// instance configures and returns the shared validator.
func instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON names so messages match what the client sent.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return cardstyle.IsHexColor(fl.Field().String())
		})

		_ = v.RegisterValidation("fontfamily", func(fl validator.FieldLevel) bool {
			return sanitize.FontFamily(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("logo", func(fl validator.FieldLevel) bool {
			return sanitize.LogoDataURL(fl.Field().String(), MaxLogoBytes)
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and returns nil, a 422 AppError describing the first
// failing field, or an internal error if s cannot be validated at all.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return apperror.NewValidation(message(ves[0]))
	}
	return apperror.NewInternal(fmt.Errorf("validating %T: %w", s, err))
}

// message turns a field error into a sentence for the client.
func message(fe validator.FieldError) string {
	field := fe.Field()
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "hexcolor6":
		return field + " must be a #RRGGBB color"
	case "fontfamily":
		return field + " contains unsupported characters"
	case "logo":
		return fmt.Sprintf("%s must be a PNG, JPEG, GIF or WebP data URL of at most %d KiB", field, MaxLogoBytes>>10)
	case "max", "lte":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min", "gte":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
