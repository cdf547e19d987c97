package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/shubhamkr/streamtube-backend/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldPassword = "password"
)

// Column and bcrypt limits the validated values must fit into.
const (
	maxUsernameLen = 64
	maxEmailLen    = 254
	maxFullNameLen = 128
	maxPasswordLen = 72
)

type UserRequestValidator struct {
}

func NewUserRequestValidator() Validator {
	return &UserRequestValidator{}
}

func (v *UserRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)

	case models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, value)
	case *models.ChangePasswordRequest:
		return v.validateChangePasswordRequest(ctx, *value)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *UserRequestValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldFullName, FieldPassword}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldUsername:
			err = validateUsername(req.Username)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldFullName:
			err = validateFullName(req.FullName)
		case FieldPassword:
			err = validatePassword(req.Password)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserRequestValidator) validateLoginRequest(_ context.Context, req models.LoginRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" && email == "" {
		return ErrNoLoginProvided
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}

	return nil
}

func (v *UserRequestValidator) validateChangePasswordRequest(_ context.Context, req models.ChangePasswordRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" {
		return ErrEmptyPassword
	}

	return validatePassword(req.NewPassword)
}

func (v *UserRequestValidator) validateUpdateProfileRequest(_ context.Context, req models.UpdateProfileRequest) error {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)

	if fullName == "" && email == "" {
		return ErrNoFieldsToUpdate
	}
	if fullName != "" && len(fullName) > maxFullNameLen {
		return ErrFullNameTooLong
	}
	if email != "" {
		return validateEmail(email)
	}

	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > maxUsernameLen {
		return ErrUsernameTooLong
	}
	for _, r := range username {
		// handles are stored lowercased; uppercase input is still accepted
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidUsername, r)
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > maxEmailLen {
		return fmt.Errorf("%w: too long", ErrInvalidEmail)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}

	return nil
}

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return ErrEmptyFullName
	}
	if len(fullName) > maxFullNameLen {
		return ErrFullNameTooLong
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	// bcrypt silently truncates beyond 72 bytes; reject instead
	if len(password) > maxPasswordLen {
		return ErrPasswordTooLong
	}

	return nil
}
