package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
)

// ReconcileJobs schedules the attendance reconciliation sweep. The sweep
// itself is idempotent, so running it hourly just narrows the window in
// which a past day can sit uncovered.
type ReconcileJobs struct {
	syncService attendance.SyncService
}

func NewReconcileJobs(syncService attendance.SyncService) *ReconcileJobs {
	return &ReconcileJobs{syncService: syncService}
}

func (j *ReconcileJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_attendance", 1*time.Hour, j.ReconcileAttendance)
}

func (j *ReconcileJobs) ReconcileAttendance(ctx context.Context) error {
	slog.Info("Cron: Starting attendance reconciliation sweep")

	if err := j.syncService.SyncAll(ctx); err != nil {
		return err
	}

	slog.Info("Cron: Attendance reconciliation sweep completed")
	return nil
}
