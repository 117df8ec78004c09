package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validation messages are a client contract; the frontend renders them
// verbatim under the form fields.
var (
	ErrFullnameTooShort = errors.New("Fullname must be atleast 3 letters long")
	ErrEmailMissing     = errors.New("Enter Email")
	ErrEmailInvalid     = errors.New("Email is invalid")
	ErrPasswordPolicy   = errors.New("Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letter")
)

// passwordPolicy: 6-20 characters with at least one digit, one lowercase
// and one uppercase letter.
const passwordPolicy = "min=6,max=20," +
	"containsany=0123456789," +
	"containsany=abcdefghijklmnopqrstuvwxyz," +
	"containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Signup validates signup input in order, failing fast on the first
// violated rule.
func Signup(fullname, email, password string) error {
	if len(fullname) < 3 {
		return ErrFullnameTooShort
	}
	if email == "" {
		return ErrEmailMissing
	}
	if err := validate.Var(email, "email"); err != nil {
		return ErrEmailInvalid
	}
	if err := validate.Var(password, passwordPolicy); err != nil {
		return ErrPasswordPolicy
	}
	return nil
}
