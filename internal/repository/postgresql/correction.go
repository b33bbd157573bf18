package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/correction"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

type correctionRepository struct {
	db *database.DB
}

func NewCorrectionRepository(db *database.DB) correction.CorrectionRepository {
	return &correctionRepository{db: db}
}

const correctionColumns = `
	id, attendance_id, user_id, user_name, to_char(date, 'YYYY-MM-DD'),
	requested_in, requested_out, requested_status, reason, status, created_at
`

func scanCorrection(row pgx.Row) (correction.EditRequest, error) {
	var e correction.EditRequest
	err := row.Scan(
		&e.ID, &e.AttendanceID, &e.UserID, &e.UserName, &e.Date,
		&e.RequestedIn, &e.RequestedOut, &e.RequestedStatus, &e.Reason, &e.Status, &e.CreatedAt,
	)
	return e, err
}

// GetByID implements correction.CorrectionRepository.
func (r *correctionRepository) GetByID(ctx context.Context, id string) (correction.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + correctionColumns + ` FROM edit_requests WHERE id = $1`

	e, err := scanCorrection(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return correction.EditRequest{}, correction.ErrCorrectionNotFound
		}
		return correction.EditRequest{}, fmt.Errorf("failed to get edit request by id: %w", err)
	}
	return e, nil
}

// HasPendingForAttendance implements correction.CorrectionRepository.
func (r *correctionRepository) HasPendingForAttendance(ctx context.Context, attendanceID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM edit_requests WHERE attendance_id = $1 AND status = $2)`,
		attendanceID, correction.StatusPending,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending edit requests: %w", err)
	}
	return exists, nil
}

// Create implements correction.CorrectionRepository.
func (r *correctionRepository) Create(ctx context.Context, e correction.EditRequest) (correction.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO edit_requests (
			id, attendance_id, user_id, user_name, date,
			requested_in, requested_out, requested_status, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.AttendanceID, e.UserID, e.UserName, e.Date,
		e.RequestedIn, e.RequestedOut, e.RequestedStatus, e.Reason, e.Status,
	).Scan(&e.CreatedAt)
	if err != nil {
		return correction.EditRequest{}, fmt.Errorf("failed to create edit request: %w", err)
	}
	return e, nil
}

// UpdateStatus implements correction.CorrectionRepository.
func (r *correctionRepository) UpdateStatus(ctx context.Context, id string, status correction.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE edit_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update edit request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return correction.ErrCorrectionNotFound
	}
	return nil
}

// GetByUser implements correction.CorrectionRepository.
func (r *correctionRepository) GetByUser(ctx context.Context, userID string) ([]correction.EditRequest, error) {
	return r.queryCorrections(ctx,
		`SELECT `+correctionColumns+` FROM edit_requests WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

// List implements correction.CorrectionRepository.
func (r *correctionRepository) List(ctx context.Context) ([]correction.EditRequest, error) {
	return r.queryCorrections(ctx,
		`SELECT `+correctionColumns+` FROM edit_requests ORDER BY created_at DESC`)
}

func (r *correctionRepository) queryCorrections(ctx context.Context, query string, args ...interface{}) ([]correction.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query edit requests: %w", err)
	}
	defer rows.Close()

	var requests []correction.EditRequest
	for rows.Next() {
		e, err := scanCorrection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edit request row: %w", err)
		}
		requests = append(requests, e)
	}
	return requests, rows.Err()
}
