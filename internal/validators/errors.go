package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrUsernameTooLong  = errors.New("username is too long")
	ErrInvalidUsername  = errors.New("username contains invalid characters")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyFullName    = errors.New("full name is required")
	ErrFullNameTooLong  = errors.New("full name is too long")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password exceeds the maximum length")
	ErrNoLoginProvided  = errors.New("either username or email must be provided")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
