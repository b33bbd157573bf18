package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("email or password is incorrect")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrOAuthNotConfigured  = errors.New("google login is not configured")
	ErrOAuthEmailNotFound  = errors.New("no account is registered with this google email")
)
