package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/auth"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/jwt"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

// NewAuthService builds the auth service. googleService may be nil when
// Google login is not configured; the Google operations then return
// auth.ErrOAuthNotConfigured.
func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	u := user.User{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  &hashStr,
		Role:          user.RoleParticipant,
		AccountStatus: user.AccountPending,
		University:    req.University,
		Major:         req.Major,
		Division:      req.Division,
		Phone:         req.Phone,
		StartDate:     &req.StartDate,
		EndDate:       &req.EndDate,
	}

	if _, err := s.UserRepository.Create(ctx, u); err != nil {
		return err
	}
	return nil
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if u.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !u.IsActive() {
		return auth.LoginResponse{}, user.ErrAccountNotActive
	}

	return s.buildLoginResponse(u)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user for refresh: %w", err)
	}
	if !u.IsActive() {
		return auth.TokenResponse{}, user.ErrAccountNotActive
	}

	// Rotate: the old refresh token dies with this exchange.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// GoogleRedirectURL implements auth.AuthService.
func (s *AuthServiceImpl) GoogleRedirectURL(_ context.Context, userAgent string) (string, error) {
	if s.googleService == nil {
		return "", auth.ErrOAuthNotConfigured
	}
	state := s.googleService.GenerateState(userAgent)
	return s.googleService.RedirectURL(state), nil
}

// GoogleCallback implements auth.AuthService. Google login only signs in
// accounts that already exist; it never creates one.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.LoginResponse, error) {
	if s.googleService == nil {
		return auth.LoginResponse{}, auth.ErrOAuthNotConfigured
	}

	token, err := s.googleService.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	googleUser, err := s.googleService.FetchUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to fetch google user: %w", err)
	}
	if !googleUser.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrOAuthEmailNotFound
	}

	u, err := s.UserRepository.GetByEmail(ctx, googleUser.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrOAuthEmailNotFound
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by google email: %w", err)
	}
	if !u.IsActive() {
		return auth.LoginResponse{}, user.ErrAccountNotActive
	}

	return s.buildLoginResponse(u)
}

func (s *AuthServiceImpl) buildLoginResponse(u user.User) (auth.LoginResponse, error) {
	tokens, err := s.issueTokens(u)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	return auth.LoginResponse{
		User:  user.ToResponse(u),
		Token: tokens,
	}, nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Name, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
