package domain

import (
	"loanbook/pkg/serrors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation tags of the person and loan fields. personname and contactemail
// are registered on the package validator.
const (
	nameRules        = "required,personname"
	phoneRules       = "required,number,min=3"
	emailRules       = "required,contactemail"
	addressRules     = "required"
	tagRules         = "required,alphanum"
	descriptionRules = "required,max=100"
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9 ]*$`)
	emailRe = regexp.MustCompile(
		`^[a-zA-Z0-9]+([+_.\-][a-zA-Z0-9]+)*` +
			`@([a-zA-Z0-9]+(-[a-zA-Z0-9]+)*\.)*([a-zA-Z0-9]+(-[a-zA-Z0-9]+)*){2,}$`)

	validate = newValidator() //nolint: gochecknoglobals
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "personname", nameRe)
	mustRegister(v, "contactemail", emailRe)

	return v
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// check validates value against rules. A violation is reported as an
// serrors.ErrInvalidValue error whose message is constraints.
func check(value, rules, constraints string) error {
	if err := validate.Var(value, rules); err != nil {
		return serrors.With(serrors.ErrInvalidValue, "%s", constraints)
	}

	return nil
}
