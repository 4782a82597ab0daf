package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOAuthNotConfigured = errors.New("google oauth not configured")
	ErrInvalidState       = errors.New("oauth state mismatch")
)
