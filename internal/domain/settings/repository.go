package settings

import "context"

// SettingsRepository persists the singleton schedule configuration.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when nothing has
	// been saved yet.
	Get(ctx context.Context) (Settings, error)

	// Save replaces the stored settings. Takes effect for all subsequent
	// reads immediately.
	Save(ctx context.Context, s Settings) error
}
