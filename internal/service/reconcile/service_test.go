package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/clock"
)

// ========================================
// FAKES
// ========================================

type fakeAttendanceRepo struct {
	records   map[string]attendance.Attendance // by id
	failIDs   map[string]bool
	upsertLog []string
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]attendance.Attendance),
		failIDs: make(map[string]bool),
	}
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	rec, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByUser(_ context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetByUserAndDate(_ context.Context, userID string, date string) (*attendance.Attendance, error) {
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Date == date {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Attendance) error {
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Attendance) error {
	if r.failIDs[rec.ID] {
		return errors.New("storage unavailable")
	}
	r.upsertLog = append(r.upsertLog, rec.ID)
	for id, existing := range r.records {
		if existing.UserID == rec.UserID && existing.Date == rec.Date {
			existing.Status = rec.Status
			existing.Note = rec.Note
			r.records[id] = existing
			return nil
		}
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListFilter) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

type fakePermitRepo struct {
	permits []permit.Permit
}

func (r *fakePermitRepo) GetByID(_ context.Context, id string) (permit.Permit, error) {
	for _, p := range r.permits {
		if p.ID == id {
			return p, nil
		}
	}
	return permit.Permit{}, permit.ErrPermitNotFound
}

func (r *fakePermitRepo) GetByUser(_ context.Context, userID string) ([]permit.Permit, error) {
	var out []permit.Permit
	for _, p := range r.permits {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePermitRepo) GetApprovedByUser(_ context.Context, userID string) ([]permit.Permit, error) {
	var out []permit.Permit
	for _, p := range r.permits {
		if p.UserID == userID && p.Status == permit.StatusApproved {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePermitRepo) GetByUserAndDate(_ context.Context, userID string, date string) (*permit.Permit, error) {
	for _, p := range r.permits {
		if p.UserID == userID && p.Date == date {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakePermitRepo) Create(_ context.Context, p permit.Permit) (permit.Permit, error) {
	r.permits = append(r.permits, p)
	return p, nil
}

func (r *fakePermitRepo) UpdateStatus(_ context.Context, id string, status permit.ApprovalStatus) error {
	for i, p := range r.permits {
		if p.ID == id {
			r.permits[i].Status = status
			return nil
		}
	}
	return permit.ErrPermitNotFound
}

func (r *fakePermitRepo) List(_ context.Context) ([]permit.Permit, error) {
	return r.permits, nil
}

type fakeSettingsRepo struct {
	cfg settings.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	return r.cfg, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s settings.Settings) error {
	r.cfg = s
	return nil
}

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

// ========================================
// HELPERS
// ========================================

func strPtr(s string) *string { return &s }

type env struct {
	service     attendance.SyncService
	attendances *fakeAttendanceRepo
	permits     *fakePermitRepo
	settings    *fakeSettingsRepo
	users       *fakeUserRepo
}

// 2024-01-17 is a Wednesday; the default settings make Mon-Fri operational.
func newEnv() *env {
	attendances := newFakeAttendanceRepo()
	permits := &fakePermitRepo{}
	settingsRepo := &fakeSettingsRepo{cfg: settings.Default()}
	users := &fakeUserRepo{users: make(map[string]user.User)}

	today, _ := time.Parse("2006-01-02 15:04", "2024-01-17 08:00")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &env{
		service:     NewSyncService(attendances, permits, settingsRepo, users, clock.Fixed{T: today}, logger),
		attendances: attendances,
		permits:     permits,
		settings:    settingsRepo,
		users:       users,
	}
}

func (e *env) addParticipant(id, startDate string) {
	e.users.users[id] = user.User{
		ID:            id,
		Name:          "Budi Santoso",
		Email:         id + "@example.com",
		Role:          user.RoleParticipant,
		AccountStatus: user.AccountActive,
		StartDate:     strPtr(startDate),
	}
}

func (e *env) recordDates(userID string) map[string]attendance.Status {
	out := make(map[string]attendance.Status)
	for _, rec := range e.attendances.records {
		if rec.UserID == userID {
			out[rec.Date] = rec.Status
		}
	}
	return out
}

// ========================================
// SYNC USER
// ========================================

func TestSyncUser_FillsEnrollmentPeriod(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-01")
	e.settings.cfg.Holidays = []string{"2024-01-15"}

	// A human submission on the 10th and an approved permit on the 12th.
	e.attendances.records["a1"] = attendance.Attendance{
		ID: "a1", UserID: "user-1", Date: "2024-01-10", Status: attendance.StatusPresent,
	}
	e.permits.permits = []permit.Permit{{
		ID: "prm-1", UserID: "user-1", Date: "2024-01-12",
		Type: permit.TypeSick, Status: permit.StatusApproved,
	}}

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	got := e.recordDates("user-1")

	// Every past operational day without cover is marked absent.
	for _, date := range []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
		"2024-01-08", "2024-01-09", "2024-01-11", "2024-01-16",
	} {
		assert.Equal(t, attendance.StatusAbsentBySystem, got[date], date)
	}

	// The holiday gets its own record, never an absence.
	assert.Equal(t, attendance.StatusHoliday, got["2024-01-15"])

	// The human submission survives untouched.
	assert.Equal(t, attendance.StatusPresent, got["2024-01-10"])

	// Permit-covered and weekend days stay empty, and today is never marked.
	for _, date := range []string{
		"2024-01-06", "2024-01-07", "2024-01-12", "2024-01-13", "2024-01-14", "2024-01-17",
	} {
		_, exists := got[date]
		assert.False(t, exists, date)
	}
}

func TestSyncUser_SyntheticRecordIDs(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-15")
	e.settings.cfg.Holidays = []string{"2024-01-15"}

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	holiday, err := e.attendances.GetByID(context.Background(), "HOL-user-1-2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusHoliday, holiday.Status)
	require.NotNil(t, holiday.Note)
	assert.Equal(t, attendance.NoteHoliday, *holiday.Note)

	absent, err := e.attendances.GetByID(context.Background(), "ALP-user-1-2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsentBySystem, absent.Status)
	require.NotNil(t, absent.Note)
	assert.Equal(t, attendance.NoteAbsentBySystem, *absent.Note)
}

func TestSyncUser_Idempotent(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-08")
	e.settings.cfg.Holidays = []string{"2024-01-15"}

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))
	first := len(e.attendances.records)
	firstUpserts := len(e.attendances.upsertLog)

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))
	assert.Equal(t, first, len(e.attendances.records))
	// The second run finds every day covered and writes nothing.
	assert.Equal(t, firstUpserts, len(e.attendances.upsertLog))
}

func TestSyncUser_TodayHolidayStillRecorded(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-17")
	e.settings.cfg.Holidays = []string{"2024-01-17"}

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	got := e.recordDates("user-1")
	assert.Equal(t, attendance.StatusHoliday, got["2024-01-17"])
}

func TestSyncUser_TodayNeverMarkedAbsent(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-17")

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	assert.Empty(t, e.attendances.records)
}

func TestSyncUser_EndDateCapsTheWalk(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-08")
	u := e.users.users["user-1"]
	u.EndDate = strPtr("2024-01-10")
	e.users.users["user-1"] = u

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	got := e.recordDates("user-1")
	assert.Len(t, got, 3)
	for _, date := range []string{"2024-01-08", "2024-01-09", "2024-01-10"} {
		assert.Equal(t, attendance.StatusAbsentBySystem, got[date], date)
	}
}

func TestSyncUser_NoOpCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *env)
	}{
		{
			name:  "unknown user",
			setup: func(e *env) {},
		},
		{
			name: "admin account",
			setup: func(e *env) {
				e.users.users["user-1"] = user.User{
					ID: "user-1", Role: user.RoleAdmin, AccountStatus: user.AccountActive,
				}
			},
		},
		{
			name: "participant without start date",
			setup: func(e *env) {
				e.users.users["user-1"] = user.User{
					ID: "user-1", Role: user.RoleParticipant, AccountStatus: user.AccountActive,
				}
			},
		},
		{
			name: "unparseable start date",
			setup: func(e *env) {
				e.addParticipant("user-1", "01/08/2024")
			},
		},
		{
			name: "enrollment starts in the future",
			setup: func(e *env) {
				e.addParticipant("user-1", "2024-02-01")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv()
			tt.setup(e)

			require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))
			assert.Empty(t, e.attendances.records)
		})
	}
}

func TestSyncUser_ContinuesPastFailedDates(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-15")
	e.attendances.failIDs["ALP-user-1-2024-01-15"] = true

	require.NoError(t, e.service.SyncUser(context.Background(), "user-1"))

	// The failed date is skipped but the next one is still written.
	got := e.recordDates("user-1")
	_, exists := got["2024-01-15"]
	assert.False(t, exists)
	assert.Equal(t, attendance.StatusAbsentBySystem, got["2024-01-16"])
}

// ========================================
// SYNC ALL
// ========================================

func TestSyncAll_CoversEveryActiveParticipant(t *testing.T) {
	e := newEnv()
	e.addParticipant("user-1", "2024-01-15")
	e.addParticipant("user-2", "2024-01-16")

	// Inactive and admin accounts are not swept.
	e.users.users["user-3"] = user.User{
		ID: "user-3", Role: user.RoleParticipant, AccountStatus: user.AccountPending,
		StartDate: strPtr("2024-01-15"),
	}
	e.users.users["admin-1"] = user.User{
		ID: "admin-1", Role: user.RoleAdmin, AccountStatus: user.AccountActive,
	}

	require.NoError(t, e.service.SyncAll(context.Background()))

	assert.Equal(t, attendance.StatusAbsentBySystem, e.recordDates("user-1")["2024-01-15"])
	assert.Equal(t, attendance.StatusAbsentBySystem, e.recordDates("user-2")["2024-01-16"])
	assert.Empty(t, e.recordDates("user-3"))
}
