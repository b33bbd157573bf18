package participant

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
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
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
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

type fakeSyncService struct {
	syncedUsers []string
}

func (s *fakeSyncService) SyncUser(_ context.Context, userID string) error {
	s.syncedUsers = append(s.syncedUsers, userID)
	return nil
}

func (s *fakeSyncService) SyncAll(_ context.Context) error { return nil }

func strPtr(s string) *string { return &s }

func newEnv() (user.ParticipantService, *fakeUserRepo, *fakeSyncService) {
	repo := &fakeUserRepo{users: map[string]user.User{
		"user-1": {
			ID:            "user-1",
			Name:          "Budi Santoso",
			Email:         "budi@example.com",
			Role:          user.RoleParticipant,
			AccountStatus: user.AccountPending,
			StartDate:     strPtr("2024-01-01"),
		},
	}}
	sync := &fakeSyncService{}
	service := NewParticipantService(repo, sync, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, repo, sync
}

func updateReq() user.UpdateUserRequest {
	return user.UpdateUserRequest{
		ID:            "user-1",
		Name:          "Budi Santoso",
		Email:         "budi@example.com",
		AccountStatus: string(user.AccountActive),
		StartDate:     strPtr("2024-01-01"),
		EndDate:       strPtr("2024-06-30"),
	}
}

func TestUpdate_ActivationTriggersSync(t *testing.T) {
	service, repo, sync := newEnv()

	resp, err := service.Update(context.Background(), updateReq())
	require.NoError(t, err)

	assert.Equal(t, string(user.AccountActive), resp.AccountStatus)
	assert.Equal(t, user.AccountActive, repo.users["user-1"].AccountStatus)
	assert.Equal(t, []string{"user-1"}, sync.syncedUsers)
}

func TestUpdate_PendingAccountNotSynced(t *testing.T) {
	service, _, sync := newEnv()

	req := updateReq()
	req.AccountStatus = string(user.AccountPending)

	_, err := service.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, sync.syncedUsers)
}

func TestUpdate_UnknownUser(t *testing.T) {
	service, _, _ := newEnv()

	req := updateReq()
	req.ID = "missing"

	_, err := service.Update(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestDelete_UnknownUser(t *testing.T) {
	service, _, _ := newEnv()

	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGet_ReturnsProfile(t *testing.T) {
	service, _, _ := newEnv()

	resp, err := service.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", resp.Email)
}
