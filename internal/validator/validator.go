package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/exstem-question/internal/apperr"
)

// Validator wraps a go-playground validator with its English translator.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// New builds a Validator whose error messages use the `label` struct tag
// for field names (falling back to the Go field name).
func New() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.TrimSpace(fld.Tag.Get("label"))
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	// Overrides for the stock English texts.
	override(v, trans, "required", "{0} cannot be empty")
	override(v, trans, "max", "{0} cannot be longer than {1} characters")

	return &Validator{validate: v, trans: trans}
}

func override(v *govalidator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe govalidator.FieldError) string {
			msg, err := t.T(tag, fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// Struct validates s and returns the first failure as an apperr validation
// error, or nil if s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return apperr.Validation("%s", ve[0].Translate(v.trans))
	}
	return apperr.Validation("%s", err.Error())
}

// TranslateErrors takes a validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func (v *Validator) TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(v.trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Raw returns the underlying validation errors of s without translation,
// for callers that need per-field detail.
func (v *Validator) Raw(s interface{}) error {
	return v.validate.Struct(s)
}
