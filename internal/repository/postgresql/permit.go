package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

type permitRepository struct {
	db *database.DB
}

func NewPermitRepository(db *database.DB) permit.PermitRepository {
	return &permitRepository{db: db}
}

const permitColumns = `
	id, user_id, user_name, type, to_char(date, 'YYYY-MM-DD'),
	reason, evidence_url, status, lat, lng, created_at
`

func scanPermit(row pgx.Row) (permit.Permit, error) {
	var p permit.Permit
	err := row.Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Type, &p.Date,
		&p.Reason, &p.EvidenceURL, &p.Status, &p.Lat, &p.Lng, &p.CreatedAt,
	)
	return p, err
}

// GetByID implements permit.PermitRepository.
func (r *permitRepository) GetByID(ctx context.Context, id string) (permit.Permit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + permitColumns + ` FROM permits WHERE id = $1`

	p, err := scanPermit(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return permit.Permit{}, permit.ErrPermitNotFound
		}
		return permit.Permit{}, fmt.Errorf("failed to get permit by id: %w", err)
	}
	return p, nil
}

// GetByUser implements permit.PermitRepository.
func (r *permitRepository) GetByUser(ctx context.Context, userID string) ([]permit.Permit, error) {
	return r.queryPermits(ctx,
		`SELECT `+permitColumns+` FROM permits WHERE user_id = $1 ORDER BY date DESC`, userID)
}

// GetApprovedByUser implements permit.PermitRepository.
func (r *permitRepository) GetApprovedByUser(ctx context.Context, userID string) ([]permit.Permit, error) {
	return r.queryPermits(ctx,
		`SELECT `+permitColumns+` FROM permits WHERE user_id = $1 AND status = $2 ORDER BY date DESC`,
		userID, permit.StatusApproved)
}

// GetByUserAndDate implements permit.PermitRepository.
func (r *permitRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*permit.Permit, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + permitColumns + ` FROM permits WHERE user_id = $1 AND date = $2 LIMIT 1`

	p, err := scanPermit(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permit by user and date: %w", err)
	}
	return &p, nil
}

// Create implements permit.PermitRepository.
func (r *permitRepository) Create(ctx context.Context, p permit.Permit) (permit.Permit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO permits (id, user_id, user_name, type, date, reason, evidence_url, status, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.UserID, p.UserName, p.Type, p.Date,
		p.Reason, p.EvidenceURL, p.Status, p.Lat, p.Lng,
	).Scan(&p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return permit.Permit{}, permit.ErrPermitAlreadyExists
		}
		return permit.Permit{}, fmt.Errorf("failed to create permit: %w", err)
	}
	return p, nil
}

// UpdateStatus implements permit.PermitRepository.
func (r *permitRepository) UpdateStatus(ctx context.Context, id string, status permit.ApprovalStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE permits SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update permit status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return permit.ErrPermitNotFound
	}
	return nil
}

// List implements permit.PermitRepository.
func (r *permitRepository) List(ctx context.Context) ([]permit.Permit, error) {
	return r.queryPermits(ctx, `SELECT `+permitColumns+` FROM permits ORDER BY date DESC`)
}

func (r *permitRepository) queryPermits(ctx context.Context, query string, args ...interface{}) ([]permit.Permit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query permits: %w", err)
	}
	defer rows.Close()

	var permits []permit.Permit
	for rows.Next() {
		p, err := scanPermit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permit row: %w", err)
		}
		permits = append(permits, p)
	}
	return permits, rows.Err()
}
