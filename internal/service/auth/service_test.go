package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/auth"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListActiveParticipants(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.users {
		if u.Role == user.RoleParticipant && u.AccountStatus == user.AccountActive {
			out = append(out, u)
		}
	}
	return out, nil
}

type env struct {
	service auth.AuthService
	users   *fakeUserRepo
	jwt     jwt.Service
}

func newEnv() *env {
	users := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return &env{
		service: NewAuthService(users, jwtService, nil),
		users:   users,
		jwt:     jwtService,
	}
}

func (e *env) addActiveUser(id, email, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	hashStr := string(hash)
	e.users.users[id] = user.User{
		ID:            id,
		Name:          "Budi Santoso",
		Email:         email,
		PasswordHash:  &hashStr,
		Role:          user.RoleParticipant,
		AccountStatus: user.AccountActive,
	}
}

func registerReq() auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:      "Budi Santoso",
		Email:     "budi@example.com",
		Password:  "s3cret-password",
		StartDate: "2024-01-01",
		EndDate:   "2024-06-30",
	}
}

func TestRegister_CreatesPendingParticipant(t *testing.T) {
	e := newEnv()

	require.NoError(t, e.service.Register(context.Background(), registerReq()))

	u, err := e.users.GetByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleParticipant, u.Role)
	assert.Equal(t, user.AccountPending, u.AccountStatus)
	require.NotNil(t, u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("s3cret-password")))
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	e := newEnv()

	require.NoError(t, e.service.Register(context.Background(), registerReq()))
	err := e.service.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	e := newEnv()
	req := registerReq()
	req.Password = "short"

	assert.Error(t, e.service.Register(context.Background(), req))
}

func TestLogin_Succeeds(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")

	resp, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", resp.User.ID)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")

	_, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	e := newEnv()

	_, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "nobody@example.com", Password: "whatever-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_PendingAccountRejected(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")
	u := e.users.users["user-1"]
	u.AccountStatus = user.AccountPending
	e.users.users["user-1"] = u

	_, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "s3cret-password",
	})
	assert.ErrorIs(t, err, user.ErrAccountNotActive)
}

func TestRefresh_RotatesToken(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")

	login, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	refreshed, err := e.service.Refresh(context.Background(), login.Token.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The exchanged token is spent.
	_, err = e.service.Refresh(context.Background(), login.Token.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefresh_AccessTokenNotAccepted(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")

	login, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	_, err = e.service.Refresh(context.Background(), login.Token.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	e := newEnv()
	e.addActiveUser("user-1", "budi@example.com", "s3cret-password")

	login, err := e.service.Login(context.Background(), auth.LoginRequest{
		Email: "budi@example.com", Password: "s3cret-password",
	})
	require.NoError(t, err)

	require.NoError(t, e.service.Logout(context.Background(), login.Token.RefreshToken))

	_, err = e.service.Refresh(context.Background(), login.Token.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestGoogleLogin_NotConfigured(t *testing.T) {
	e := newEnv()

	_, err := e.service.GoogleRedirectURL(context.Background(), "test-agent")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)

	_, err = e.service.GoogleCallback(context.Background(), "code")
	assert.ErrorIs(t, err, auth.ErrOAuthNotConfigured)
}
