package attendance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/clock"
	"github.com/sigdev/absensi-magang-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	permit.PermitRepository
	settings.SettingsRepository
	fileService file.FileService
	clock       clock.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	permitRepo permit.PermitRepository,
	settingsRepo settings.SettingsRepository,
	fileService file.FileService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		PermitRepository:     permitRepo,
		SettingsRepository:   settingsRepo,
		fileService:          fileService,
		clock:                clk,
	}
}

// gateSubmission applies the rules shared by clock-in and clock-out: no
// submissions on holidays, on non-operational days, on days a permit
// already covers, or on days the system already marked absent. Settings are
// fetched once here and returned so the whole operation sees one version.
func (s *AttendanceServiceImpl) gateSubmission(ctx context.Context, userID string) (settings.Settings, clock.ServerTime, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Settings{}, clock.ServerTime{}, fmt.Errorf("failed to get settings: %w", err)
	}

	// One clock reading per gate; every check below sees the same instant.
	instant := s.clock.Now()
	now := clock.At(instant)

	if cfg.IsHoliday(now.Date) {
		return cfg, now, attendance.ErrHolidayToday
	}
	if !cfg.IsOperationalDay(instant) {
		return cfg, now, attendance.ErrNotOperationalDay
	}

	p, err := s.PermitRepository.GetByUserAndDate(ctx, userID, now.Date)
	if err != nil {
		return cfg, now, fmt.Errorf("failed to check permits for today: %w", err)
	}
	if p != nil && (p.Status == permit.StatusPending || p.Status == permit.StatusApproved) {
		return cfg, now, attendance.ErrPermitExistsToday
	}

	return cfg, now, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg, now, err := s.gateSubmission(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, now.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}
	if existing != nil {
		if existing.Status == attendance.StatusAbsentBySystem {
			return attendance.AttendanceResponse{}, attendance.ErrMarkedAbsentToday
		}
		if existing.ClockIn != nil {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
		}
	}

	if attendance.BeforeClockInWindow(now.Time, cfg) {
		return attendance.AttendanceResponse{}, attendance.ErrTooEarlyToClockIn
	}

	status, lateMinutes := attendance.ClassifyClockIn(now.Time, cfg)

	photoURL, err := s.fileService.UploadAttendancePhoto(ctx, req.UserID, now.Date, req.File, req.FileHeader.Filename, "CLOCK_IN")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload clock-in photo: %w", err)
	}

	timeOfDay := now.Time
	record := attendance.Attendance{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		UserName:    req.UserName,
		Date:        now.Date,
		ClockIn:     &timeOfDay,
		Status:      status,
		LateMinutes: lateMinutes,
		PhotoInURL:  &photoURL,
		ClockInLat:  &req.Latitude,
		ClockInLng:  &req.Longitude,
		Note:        req.Note,
	}

	// A racing duplicate for the same (user, date) resolves in the store.
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	cfg, now, err := s.gateSubmission(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, now.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if record == nil || record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.Status == attendance.StatusAbsentBySystem {
		return attendance.AttendanceResponse{}, attendance.ErrMarkedAbsentToday
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}
	if !attendance.WithinClockOutWindow(now.Time, cfg) {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideClockOutHours
	}

	photoURL, err := s.fileService.UploadAttendancePhoto(ctx, req.UserID, now.Date, req.File, req.FileHeader.Filename, "CLOCK_OUT")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to upload clock-out photo: %w", err)
	}

	timeOfDay := now.Time
	record.ClockOut = &timeOfDay
	record.Status = attendance.StatusClockedOut
	record.PhotoOutURL = &photoURL
	record.ClockOutLat = &req.Latitude
	record.ClockOutLng = &req.Longitude
	if req.Note != nil {
		record.Note = req.Note
	}

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for user: %w", err)
	}
	return attendance.ToResponseList(records), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return attendance.ToResponseList(records), nil
}
