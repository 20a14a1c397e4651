package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidIconName    = errors.New("INVALID_ICON_NAME")
	ErrInvalidCategory    = errors.New("INVALID_CATEGORY")
	ErrInvalidPage        = errors.New("INVALID_PAGE")
)
