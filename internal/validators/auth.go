package validators

import (
	"context"

	"github.com/MKhiriev/go-bus-finder/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// AuthRequestValidator implements [Validator] for signup and login requests.
//
// Only presence is checked. Values are never trimmed or normalized, so a
// field consisting of whitespace is present.
type AuthRequestValidator struct {
}

// NewAuthRequestValidator constructs a new AuthRequestValidator and returns
// it as the Validator interface.
func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of models.SignupRequest and models.LoginRequest are accepted.
//
// Returns ErrUnsupportedType for any other type.
func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignupRequest checks name, email and password by default.
func (v *AuthRequestValidator) validateSignupRequest(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest checks email and password by default.
func (v *AuthRequestValidator) validateLoginRequest(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
