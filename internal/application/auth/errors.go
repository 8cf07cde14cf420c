package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("password confirmation does not match")
	ErrAccountLocked      = errors.New("account is locked")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrRegisterUser       = errors.New("failed to register user")
	ErrIssueToken         = errors.New("failed to issue token")
	ErrExternalLogin      = errors.New("failed to complete external login")
	ErrResetPassword      = errors.New("failed to reset password")
)
