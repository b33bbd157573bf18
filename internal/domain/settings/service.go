package settings

import "context"

// SettingsService defines schedule configuration operations.
type SettingsService interface {
	// Get returns the schedule currently in force.
	Get(ctx context.Context) (Settings, error)

	// Update replaces the schedule (admin). New holidays are reflected in
	// past attendance on the next reconciliation sweep.
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}
