package auth

import "context"

// AuthService defines account and session operations.
type AuthService interface {
	// Register creates a pending participant account.
	Register(ctx context.Context, req RegisterRequest) error

	// Login verifies credentials and issues access/refresh tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for fresh tokens.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GoogleRedirectURL starts the Google OAuth2 login flow.
	GoogleRedirectURL(ctx context.Context, userAgent string) (string, error)

	// GoogleCallback finishes the flow, matching the verified Google email
	// to an existing account.
	GoogleCallback(ctx context.Context, code string) (LoginResponse, error)
}
