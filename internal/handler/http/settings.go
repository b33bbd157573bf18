package http

import (
	"encoding/json"
	"net/http"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/response"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/clock"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ServerTime(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
	clock           clock.Clock
}

func NewSettingsHandler(settingsService settings.SettingsService, clk clock.Clock) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
		clock:           clk,
	}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", result)
}

// ServerTime implements SettingsHandler. Clients render schedules against
// this reading, never their own clock.
func (h *settingsHandlerImpl) ServerTime(w http.ResponseWriter, r *http.Request) {
	response.Success(w, clock.Snapshot(h.clock))
}
