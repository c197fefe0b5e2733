package submission

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// FieldError describes one failed rule on one form field
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationErrors lists every failed rule of a form
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Rule))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator checks and cleans submitted forms
type Validator struct {
	validate *validator.Validate
	policy   *bluemonday.Policy
}

// NewValidator builds a Validator; categories are the job categories a
// candidate may pick on the resume form
func NewValidator(categories []string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON field names rather than Go ones
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("contact_subject", oneOf(ContactSubjects))
	_ = v.RegisterValidation("experience_band", oneOf(ExperienceBands))
	_ = v.RegisterValidation("notice_period", oneOf(NoticePeriods))
	_ = v.RegisterValidation("job_category", oneOf(categories))

	return &Validator{
		validate: v,
		policy:   bluemonday.StrictPolicy(),
	}
}

func oneOf(options []string) validator.Func {
	allowed := slices.Clone(options)
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}

// Clean strips markup from every text field and trims whitespace, then
// validates the result. Entities produced by the policy are decoded again
// so values like "IT & Software" survive.
func (v *Validator) Clean(form Form) error {
	form.sanitize(func(s string) string {
		return strings.TrimSpace(html.UnescapeString(v.policy.Sanitize(s)))
	})

	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
