package response

import (
	"errors"
	"net/http"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/auth"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/correction"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/permit"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/supervisor"
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/user"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		NotFound(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAccountNotActive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, err.Error())

	// Attendance gating errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut),
		errors.Is(err, attendance.ErrMarkedAbsentToday),
		errors.Is(err, attendance.ErrPermitExistsToday):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrTooEarlyToClockIn),
		errors.Is(err, attendance.ErrOutsideClockOutHours),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrHolidayToday),
		errors.Is(err, attendance.ErrNotOperationalDay):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())

	// Permit domain errors
	case errors.Is(err, permit.ErrPermitNotFound):
		NotFound(w, "Permit not found")
	case errors.Is(err, permit.ErrPermitAlreadyExists):
		Conflict(w, err.Error())
	case errors.Is(err, permit.ErrPermitAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, permit.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Correction domain errors
	case errors.Is(err, correction.ErrCorrectionNotFound):
		NotFound(w, "Correction request not found")
	case errors.Is(err, correction.ErrPendingCorrectionExists):
		Conflict(w, err.Error())
	case errors.Is(err, correction.ErrCorrectionAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, correction.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Supervisor domain errors
	case errors.Is(err, supervisor.ErrSupervisorNotFound):
		NotFound(w, "Supervisor not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
