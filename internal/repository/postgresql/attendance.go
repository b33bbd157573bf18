package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, user_name, to_char(date, 'YYYY-MM-DD'),
	clock_in, clock_out, status, late_minutes,
	photo_in_url, photo_out_url,
	clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng,
	note, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.UserID, &a.UserName, &a.Date,
		&a.ClockIn, &a.ClockOut, &a.Status, &a.LateMinutes,
		&a.PhotoInURL, &a.PhotoOutURL,
		&a.ClockInLat, &a.ClockInLng, &a.ClockOutLat, &a.ClockOutLng,
		&a.Note, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return a, nil
}

// GetByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE user_id = $1 ORDER BY date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE user_id = $1 AND date = $2 LIMIT 1`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}
	return &a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, user_name, date, clock_in, clock_out, status, late_minutes,
			photo_in_url, photo_out_url,
			clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.UserID, record.UserName, record.Date,
		record.ClockIn, record.ClockOut, record.Status, record.LateMinutes,
		record.PhotoInURL, record.PhotoOutURL,
		record.ClockInLat, record.ClockInLng, record.ClockOutLat, record.ClockOutLng,
		record.Note,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $2, clock_out = $3, status = $4, late_minutes = $5,
		    photo_in_url = $6, photo_out_url = $7,
		    clock_in_lat = $8, clock_in_lng = $9, clock_out_lat = $10, clock_out_lng = $11,
		    note = $12, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID, record.ClockIn, record.ClockOut, record.Status, record.LateMinutes,
		record.PhotoInURL, record.PhotoOutURL,
		record.ClockInLat, record.ClockInLng, record.ClockOutLat, record.ClockOutLng,
		record.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Upsert implements attendance.AttendanceRepository. Insert-or-replace
// resolved on (user_id, date), the one-record-per-day constraint: a fresh
// insert keeps the caller's deterministic id, while a day that already has a
// record (including a synthetic one written by the hourly sweep) keeps its
// row and only takes the new status and note. Replays land on the same row
// either way.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, user_id, user_name, date, clock_in, clock_out, status, late_minutes,
			photo_in_url, photo_out_url,
			clock_in_lat, clock_in_lng, clock_out_lat, clock_out_lng, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (user_id, date) DO UPDATE
		SET status = EXCLUDED.status, note = EXCLUDED.note, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		record.ID, record.UserID, record.UserName, record.Date,
		record.ClockIn, record.ClockOut, record.Status, record.LateMinutes,
		record.PhotoInURL, record.PhotoOutURL,
		record.ClockInLat, record.ClockInLng, record.ClockOutLat, record.ClockOutLng,
		record.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filter.UserID)
		argNum++
	}
	if filter.StartDate != "" {
		query += fmt.Sprintf(" AND date >= $%d", argNum)
		args = append(args, filter.StartDate)
		argNum++
	}
	if filter.EndDate != "" {
		query += fmt.Sprintf(" AND date <= $%d", argNum)
		args = append(args, filter.EndDate)
		argNum++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filter.Status)
		argNum++
	}
	query += " ORDER BY date DESC, user_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
