package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/middleware"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/response"
)

type ParticipantHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type participantHandlerImpl struct {
	participantService user.ParticipantService
}

func NewParticipantHandler(participantService user.ParticipantService) ParticipantHandler {
	return &participantHandlerImpl{
		participantService: participantService,
	}
}

// Me implements ParticipantHandler.
func (h *participantHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.participantService.Get(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements ParticipantHandler.
func (h *participantHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.participantService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements ParticipantHandler.
func (h *participantHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.participantService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Participant updated", result)
}

// Delete implements ParticipantHandler.
func (h *participantHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.participantService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Participant deleted", nil)
}

// List implements ParticipantHandler.
func (h *participantHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.participantService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
