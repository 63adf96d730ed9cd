package identity

import (
	"unicode/utf8"

	"github.com/AmanKumar245/crimewatch/internal/domain"
)

const (
	minDisplayNameLen = 2
	maxDisplayNameLen = 100
	maxEmailLen       = 254
)

// RegisterInput holds parameters for creating a new actor.
type RegisterInput struct {
	DisplayName string
	Email       string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch n := utf8.RuneCountInString(i.DisplayName); {
	case n == 0:
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	case n < minDisplayNameLen:
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too short"})
	case n > maxDisplayNameLen:
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	errs = append(errs, validateEmail(i.Email)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for signing in.
type SignInInput struct {
	Email string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	if errs := validateEmail(i.Email); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLen:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	case !domain.IsValidEmail(email):
		return []domain.FieldError{{Field: "email", Message: "invalid email format"}}
	}
	return nil
}
