package http

import (
	"net/http"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/response"
)

type SyncHandler interface {
	TriggerAll(w http.ResponseWriter, r *http.Request)
}

type syncHandlerImpl struct {
	syncService attendance.SyncService
}

func NewSyncHandler(syncService attendance.SyncService) SyncHandler {
	return &syncHandlerImpl{
		syncService: syncService,
	}
}

// TriggerAll implements SyncHandler. Admins can force a reconciliation
// sweep instead of waiting for the scheduled run.
func (h *syncHandlerImpl) TriggerAll(w http.ResponseWriter, r *http.Request) {
	if err := h.syncService.SyncAll(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reconciliation completed", nil)
}
