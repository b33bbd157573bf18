package postgresql

import (
	"context"
	"fmt"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/supervisor"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

type supervisorRepository struct {
	db *database.DB
}

func NewSupervisorRepository(db *database.DB) supervisor.SupervisorRepository {
	return &supervisorRepository{db: db}
}

// List implements supervisor.SupervisorRepository.
func (r *supervisorRepository) List(ctx context.Context) ([]supervisor.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, division, employee_id FROM supervisors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisors: %w", err)
	}
	defer rows.Close()

	var supervisors []supervisor.Supervisor
	for rows.Next() {
		var s supervisor.Supervisor
		if err := rows.Scan(&s.ID, &s.Name, &s.Division, &s.EmployeeID); err != nil {
			return nil, fmt.Errorf("failed to scan supervisor row: %w", err)
		}
		supervisors = append(supervisors, s)
	}
	return supervisors, rows.Err()
}

// Upsert implements supervisor.SupervisorRepository.
func (r *supervisorRepository) Upsert(ctx context.Context, s supervisor.Supervisor) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO supervisors (id, name, division, employee_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, division = EXCLUDED.division
	`
	if _, err := q.Exec(ctx, query, s.ID, s.Name, s.Division, s.EmployeeID); err != nil {
		return fmt.Errorf("failed to upsert supervisor: %w", err)
	}
	return nil
}

// Delete implements supervisor.SupervisorRepository.
func (r *supervisorRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM supervisors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supervisor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return supervisor.ErrSupervisorNotFound
	}
	return nil
}
