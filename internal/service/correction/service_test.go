package correction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/correction"
)

// ========================================
// FAKES
// ========================================

type fakeCorrectionRepo struct {
	requests []correction.EditRequest
}

func (r *fakeCorrectionRepo) GetByID(_ context.Context, id string) (correction.EditRequest, error) {
	for _, e := range r.requests {
		if e.ID == id {
			return e, nil
		}
	}
	return correction.EditRequest{}, correction.ErrCorrectionNotFound
}

func (r *fakeCorrectionRepo) HasPendingForAttendance(_ context.Context, attendanceID string) (bool, error) {
	for _, e := range r.requests {
		if e.AttendanceID == attendanceID && e.Status == correction.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCorrectionRepo) Create(_ context.Context, e correction.EditRequest) (correction.EditRequest, error) {
	r.requests = append(r.requests, e)
	return e, nil
}

func (r *fakeCorrectionRepo) UpdateStatus(_ context.Context, id string, status correction.ApprovalStatus) error {
	for i, e := range r.requests {
		if e.ID == id {
			r.requests[i].Status = status
			return nil
		}
	}
	return correction.ErrCorrectionNotFound
}

func (r *fakeCorrectionRepo) GetByUser(_ context.Context, userID string) ([]correction.EditRequest, error) {
	var out []correction.EditRequest
	for _, e := range r.requests {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeCorrectionRepo) List(_ context.Context) ([]correction.EditRequest, error) {
	return r.requests, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
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
	if _, ok := r.records[rec.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Attendance) error {
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

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// ========================================
// HELPERS
// ========================================

func strPtr(s string) *string { return &s }

type env struct {
	service     correction.CorrectionService
	corrections *fakeCorrectionRepo
	attendances *fakeAttendanceRepo
}

func newEnv() *env {
	corrections := &fakeCorrectionRepo{}
	attendances := &fakeAttendanceRepo{records: map[string]attendance.Attendance{
		"att-1": {
			ID:     "att-1",
			UserID: "user-1",
			Date:   "2024-01-16",
			Status: attendance.StatusAbsentBySystem,
			Note:   strPtr(attendance.NoteAbsentBySystem),
		},
	}}
	service := NewCorrectionService(corrections, attendances, fakeTransactor{})
	return &env{service: service, corrections: corrections, attendances: attendances}
}

func submitReq() correction.SubmitCorrectionRequest {
	return correction.SubmitCorrectionRequest{
		UserID:          "user-1",
		UserName:        "Budi Santoso",
		AttendanceID:    "att-1",
		RequestedIn:     strPtr("08:05"),
		RequestedOut:    strPtr("17:10"),
		RequestedStatus: string(attendance.StatusClockedOut),
		Reason:          "Forgot to submit, was on site all day",
	}
}

// ========================================
// SUBMIT
// ========================================

func TestSubmit_CreatesPendingCorrection(t *testing.T) {
	e := newEnv()

	resp, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	assert.Equal(t, correction.StatusPending, resp.Status)
	assert.Equal(t, "att-1", resp.AttendanceID)
	assert.Equal(t, "2024-01-16", resp.Date)
	assert.NotEmpty(t, resp.ID)
}

func TestSubmit_UnknownAttendanceRejected(t *testing.T) {
	e := newEnv()
	req := submitReq()
	req.AttendanceID = "missing"

	_, err := e.service.Submit(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestSubmit_OtherUsersRecordRejected(t *testing.T) {
	e := newEnv()
	req := submitReq()
	req.UserID = "user-2"

	_, err := e.service.Submit(context.Background(), req)
	assert.ErrorIs(t, err, attendance.ErrUnauthorized)
}

func TestSubmit_SecondPendingBlocked(t *testing.T) {
	e := newEnv()

	_, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	_, err = e.service.Submit(context.Background(), submitReq())
	assert.ErrorIs(t, err, correction.ErrPendingCorrectionExists)
}

func TestSubmit_AllowedAgainAfterDecision(t *testing.T) {
	e := newEnv()

	first, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	_, err = e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: first.ID, Decision: correction.DecisionReject,
	})
	require.NoError(t, err)

	_, err = e.service.Submit(context.Background(), submitReq())
	assert.NoError(t, err)
}

// ========================================
// DECIDE
// ========================================

func TestDecide_ApproveOverwritesRecord(t *testing.T) {
	e := newEnv()
	submitted, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	resp, err := e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: submitted.ID, Decision: correction.DecisionApprove,
	})
	require.NoError(t, err)
	assert.Equal(t, correction.StatusApproved, resp.Status)

	record := e.attendances.records["att-1"]
	assert.Equal(t, attendance.StatusClockedOut, record.Status)
	require.NotNil(t, record.ClockIn)
	assert.Equal(t, "08:05", *record.ClockIn)
	require.NotNil(t, record.ClockOut)
	assert.Equal(t, "17:10", *record.ClockOut)
	require.NotNil(t, record.Note)
	assert.Equal(t, attendance.NoteCorrected, *record.Note)
}

func TestDecide_RejectLeavesRecordUntouched(t *testing.T) {
	e := newEnv()
	submitted, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	resp, err := e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: submitted.ID, Decision: correction.DecisionReject,
	})
	require.NoError(t, err)
	assert.Equal(t, correction.StatusRejected, resp.Status)

	record := e.attendances.records["att-1"]
	assert.Equal(t, attendance.StatusAbsentBySystem, record.Status)
	assert.Nil(t, record.ClockIn)
}

func TestDecide_SecondDecisionRejected(t *testing.T) {
	e := newEnv()
	submitted, err := e.service.Submit(context.Background(), submitReq())
	require.NoError(t, err)

	_, err = e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: submitted.ID, Decision: correction.DecisionApprove,
	})
	require.NoError(t, err)

	_, err = e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: submitted.ID, Decision: correction.DecisionApprove,
	})
	assert.ErrorIs(t, err, correction.ErrCorrectionAlreadyProcessed)
}

func TestDecide_UnknownCorrection(t *testing.T) {
	e := newEnv()

	_, err := e.service.Decide(context.Background(), correction.DecideCorrectionRequest{
		CorrectionID: "missing", Decision: correction.DecisionApprove,
	})
	assert.ErrorIs(t, err, correction.ErrCorrectionNotFound)
}
