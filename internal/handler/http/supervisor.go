package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/supervisor"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/response"
)

type SupervisorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type supervisorHandlerImpl struct {
	supervisorService supervisor.SupervisorService
}

func NewSupervisorHandler(supervisorService supervisor.SupervisorService) SupervisorHandler {
	return &supervisorHandlerImpl{
		supervisorService: supervisorService,
	}
}

// List implements SupervisorHandler.
func (h *supervisorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.supervisorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Save implements SupervisorHandler.
func (h *supervisorHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req supervisor.SaveSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.supervisorService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supervisor saved", result)
}

// Delete implements SupervisorHandler.
func (h *supervisorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.supervisorService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supervisor deleted", nil)
}
