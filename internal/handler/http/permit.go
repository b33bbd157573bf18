package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/middleware"
	"github.com/sigdev/absensi-magang-backend-go/internal/handler/http/response"
)

type PermitHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	GetMyPermits(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type permitHandlerImpl struct {
	permitService permit.PermitService
}

func NewPermitHandler(permitService permit.PermitService) PermitHandler {
	return &permitHandlerImpl{
		permitService: permitService,
	}
}

// Submit implements PermitHandler.
func (h *permitHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req permit.SubmitPermitRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Evidence is optional
	file, fileHeader, err := r.FormFile("evidence")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	req.UserID = middleware.UserID(r)
	req.UserName = middleware.UserName(r)

	result, err := h.permitService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permit submitted", result)
}

// Decide implements PermitHandler.
func (h *permitHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req permit.DecidePermitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PermitID = chi.URLParam(r, "id")

	result, err := h.permitService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permit decided", result)
}

// GetMyPermits implements PermitHandler.
func (h *permitHandlerImpl) GetMyPermits(w http.ResponseWriter, r *http.Request) {
	result, err := h.permitService.GetMyPermits(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PermitHandler.
func (h *permitHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.permitService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
