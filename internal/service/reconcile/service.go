package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/clock"
)

// SyncServiceImpl fills the gaps in a participant's attendance history. Every
// operational day between enrollment and today ends up with a record: days a
// permit covers are left to the permit decision, configured holidays get a
// COMPANY_HOLIDAY record, and past days with no submission at all get
// ABSENT_BY_SYSTEM. Days that already have a record are never touched, so the
// sweep can run from any trigger, any number of times.
type SyncServiceImpl struct {
	attendance.AttendanceRepository
	permit.PermitRepository
	settings.SettingsRepository
	user.UserRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewSyncService(
	attendanceRepo attendance.AttendanceRepository,
	permitRepo permit.PermitRepository,
	settingsRepo settings.SettingsRepository,
	userRepo user.UserRepository,
	clk clock.Clock,
	logger *slog.Logger,
) attendance.SyncService {
	return &SyncServiceImpl{
		AttendanceRepository: attendanceRepo,
		PermitRepository:     permitRepo,
		SettingsRepository:   settingsRepo,
		UserRepository:       userRepo,
		clock:                clk,
		logger:               logger,
	}
}

const dateLayout = "2006-01-02"

// SyncUser implements attendance.SyncService.
func (s *SyncServiceImpl) SyncUser(ctx context.Context, userID string) error {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get user for sync: %w", err)
	}

	// Only enrolled participants have an attendance history to fill.
	if u.IsAdmin() || u.StartDate == nil {
		return nil
	}

	start, err := time.Parse(dateLayout, *u.StartDate)
	if err != nil {
		s.logger.Warn("skipping sync: unparseable enrollment start date",
			slog.String("user_id", u.ID),
			slog.String("start_date", *u.StartDate))
		return nil
	}

	today, err := time.Parse(dateLayout, clock.Snapshot(s.clock).Date)
	if err != nil {
		return fmt.Errorf("failed to parse current date: %w", err)
	}
	if start.After(today) {
		return nil
	}

	// One settings version for the whole walk.
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings for sync: %w", err)
	}

	end := today
	if u.EndDate != nil {
		if parsed, perr := time.Parse(dateLayout, *u.EndDate); perr == nil && parsed.Before(end) {
			end = parsed
		}
	}

	covered, err := s.coveredDates(ctx, u.ID)
	if err != nil {
		return err
	}
	permitted, err := s.approvedPermitDates(ctx, u.ID)
	if err != nil {
		return err
	}

	todayStr := today.Format(dateLayout)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		if covered[date] {
			continue
		}

		var record *attendance.Attendance
		switch {
		case cfg.IsHoliday(date):
			note := attendance.NoteHoliday
			record = &attendance.Attendance{
				ID:       attendance.HolidayRecordID(u.ID, date),
				UserID:   u.ID,
				UserName: u.Name,
				Date:     date,
				Status:   attendance.StatusHoliday,
				Note:     &note,
			}
		case cfg.IsOperationalDay(d) && date != todayStr && !permitted[date]:
			// The day is over with nothing submitted and no permit to
			// defer to. Today itself is still in progress, never marked.
			note := attendance.NoteAbsentBySystem
			record = &attendance.Attendance{
				ID:       attendance.AbsenceRecordID(u.ID, date),
				UserID:   u.ID,
				UserName: u.Name,
				Date:     date,
				Status:   attendance.StatusAbsentBySystem,
				Note:     &note,
			}
		default:
			continue
		}

		if err := s.AttendanceRepository.Upsert(ctx, *record); err != nil {
			s.logger.Error("failed to write reconciled attendance record",
				slog.String("user_id", u.ID),
				slog.String("date", date),
				slog.String("record_id", record.ID),
				slog.Any("error", err))
			continue
		}
	}

	return nil
}

// SyncAll implements attendance.SyncService.
func (s *SyncServiceImpl) SyncAll(ctx context.Context) error {
	participants, err := s.UserRepository.ListActiveParticipants(ctx)
	if err != nil {
		return fmt.Errorf("failed to list participants for sync: %w", err)
	}

	for _, p := range participants {
		if err := s.SyncUser(ctx, p.ID); err != nil {
			s.logger.Error("failed to sync participant attendance",
				slog.String("user_id", p.ID),
				slog.Any("error", err))
		}
	}
	return nil
}

func (s *SyncServiceImpl) coveredDates(ctx context.Context, userID string) (map[string]bool, error) {
	records, err := s.AttendanceRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history for sync: %w", err)
	}
	covered := make(map[string]bool, len(records))
	for _, r := range records {
		covered[r.Date] = true
	}
	return covered, nil
}

func (s *SyncServiceImpl) approvedPermitDates(ctx context.Context, userID string) (map[string]bool, error) {
	permits, err := s.PermitRepository.GetApprovedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved permits for sync: %w", err)
	}
	dates := make(map[string]bool, len(permits))
	for _, p := range permits {
		dates[p.Date] = true
	}
	return dates, nil
}
