package helper

import (
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"lumber-inventory/fraction"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// NewValidator builds the struct validator used for request DTOs, with the
// dimension rules "fraction" and "min_inches" and English messages.
func NewValidator() (*validator.Validate, ut.Translator) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(err)
	}

	mustRegister(validate, trans, "fraction", isFraction,
		"{0} must be a decimal (48.5), fraction (3/4), or mixed number (48 1/2)")
	mustRegister(validate, trans, "min_inches", hasMinInches,
		"{0} must be at least {1} inch")
	mustRegister(validate, trans, "max_inches", hasMaxInches,
		"{0} must be at most {1} inches")

	return validate, trans
}

func mustRegister(v *validator.Validate, trans ut.Translator, tag string, fn validator.Func, message string) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}

	err := v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field(), fe.Param())
			return t
		})
	if err != nil {
		panic(err)
	}
}

func isFraction(fl validator.FieldLevel) bool {
	_, err := fraction.Parse(fl.Field().String())
	return err == nil
}

// hasMinInches passes unparseable values; "fraction" reports those.
func hasMinInches(fl validator.FieldLevel) bool {
	v, err := fraction.Parse(fl.Field().String())
	if err != nil {
		return true
	}
	minimum, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	return v >= minimum
}

// hasMaxInches passes unparseable values; "fraction" reports those.
func hasMaxInches(fl validator.FieldLevel) bool {
	v, err := fraction.Parse(fl.Field().String())
	if err != nil {
		return true
	}
	maximum, err := strconv.ParseFloat(fl.Param(), 64)
	if err != nil {
		return false
	}
	return v <= maximum
}

// ValidateStruct validates s and returns translated messages keyed by the
// snake_case field name. The result is empty when s is valid.
func (u *HTTPHelper) ValidateStruct(s interface{}) map[string]string {
	fields := map[string]string{}

	err := u.Validate.Struct(s)
	if err == nil {
		return fields
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["form"] = err.Error()
		return fields
	}
	for _, fe := range validationErrors {
		key := Underscore(fe.StructField())
		if _, exists := fields[key]; !exists {
			fields[key] = fe.Translate(u.Translator)
		}
	}
	return fields
}

// Underscore converts a Go identifier to snake_case: "NewLocation" -> "new_location".
func Underscore(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
