package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/snnyvrz/locallibrary/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// Messages maps "field.rule" (or just "field") to the message shown to the
// user when that rule fails.
type Messages map[string]string

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

// Check runs the declared rules on form. It returns one error per failing
// field, in field declaration order, carrying the first failing rule.
func (v *Validator) Check(form any, msgs Messages) []FieldError {
	err := v.v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Rule: "syntax", Message: err.Error()}}
	}

	return formatValidationErrors(verrs, msgs)
}

func formatValidationErrors(verrs validator.ValidationErrors, msgs Messages) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))

	for _, fe := range verrs {
		field := baseField(fe.Field())
		if seen[field] {
			continue
		}
		seen[field] = true

		fields = append(fields, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: buildMessage(field, fe, msgs),
		})
	}

	return fields
}

// baseField drops the index suffix validator adds to slice elements.
func baseField(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}

func buildMessage(field string, fe validator.FieldError, msgs Messages) string {
	if m, ok := msgs[field+"."+fe.Tag()]; ok {
		return m
	}
	if m, ok := msgs[field]; ok {
		return m
	}

	if fe.Tag() == "required" {
		return field + " is required"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
