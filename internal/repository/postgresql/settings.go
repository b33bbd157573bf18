package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/database"
)

// The settings table holds one JSONB row (id = 1). pgx marshals the
// Settings struct to and from JSONB directly.
type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.Settings
	err := q.QueryRow(ctx, `SELECT config FROM settings WHERE id = 1`).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Save implements settings.SettingsRepository.
func (r *settingsRepository) Save(ctx context.Context, s settings.Settings) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (id, config) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET config = EXCLUDED.config
	`
	if _, err := q.Exec(ctx, query, s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
