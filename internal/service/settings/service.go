package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	sync   attendance.SyncService
	logger *slog.Logger
}

func NewSettingsService(
	settingsRepo settings.SettingsRepository,
	sync attendance.SyncService,
	logger *slog.Logger,
) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepo,
		sync:               sync,
		logger:             logger,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Settings, error) {
	return s.SettingsRepository.Get(ctx)
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.Settings, error) {
	if err := req.Validate(); err != nil {
		return settings.Settings{}, err
	}

	cfg := req.ToSettings()
	if err := s.SettingsRepository.Save(ctx, cfg); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}

	// A changed holiday list can reshape past days, so sweep right away
	// instead of waiting for the next scheduled run.
	if err := s.sync.SyncAll(ctx); err != nil {
		s.logger.Error("failed to reconcile attendance after settings change",
			slog.Any("error", err))
	}

	return cfg, nil
}
