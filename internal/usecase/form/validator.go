package form

import (
	"reflect"
	"sort"
	"strings"

	"hotel-console/internal/domain/reservation"
	"hotel-console/internal/pkg/errs"
	"hotel-console/internal/pkg/password"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule of one field.
type FieldError struct {
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// FieldErrors is keyed by the JSON name of the top-level field.
type FieldErrors map[string]FieldError

func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// ValidationError is returned by Submit when the form may not be sent.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "form invalid: " + strings.Join(e.Fields.Fields(), ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrFormInvalid
}

// Validator holds the rule set shared by every console form.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("stamp", func(fl validator.FieldLevel) bool {
		return reservation.IsStamp(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return password.Check(fl.Field().String()) == nil
	})
	return &Validator{v: v}
}

// Struct evaluates every rule of s. A nil result means s is valid.
func (v *Validator) Struct(s any) FieldErrors {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return FieldErrors{"": {Rule: "invalid"}}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		field := topLevel(fe.Field())
		if _, seen := out[field]; seen {
			continue
		}
		e := FieldError{Rule: fe.Tag(), Param: fe.Param()}
		if e.Rule == "password" {
			e.Param = passwordParam(fe.Value())
		}
		out[field] = e
	}
	return out
}

// passwordParam names the character class a rejected password lacks.
func passwordParam(value any) string {
	s, _ := value.(string)
	switch err := password.Check(s); {
	case errs.Is(err, password.ErrMissingLetter):
		return "letter"
	case errs.Is(err, password.ErrMissingDigit):
		return "digit"
	default:
		return ""
	}
}

// topLevel maps "roles[0]" to "roles".
func topLevel(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		return field[:i]
	}
	return field
}
