package correction

import (
	"github.com/sigdev/absensi-magang-backend-go/internal/domain/attendance"
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

type SubmitCorrectionRequest struct {
	UserID          string  `json:"-"`
	UserName        string  `json:"-"`
	AttendanceID    string  `json:"attendance_id"`
	RequestedIn     *string `json:"requested_in,omitempty"`
	RequestedOut    *string `json:"requested_out,omitempty"`
	RequestedStatus string  `json:"requested_status"`
	Reason          string  `json:"reason"`
}

func (r *SubmitCorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if !attendance.IsValidStatus(attendance.Status(r.RequestedStatus)) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_status",
			Message: "requested_status is not a recognized attendance status",
		})
	}

	if r.RequestedIn != nil && !validator.IsValidTimeOfDay(*r.RequestedIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_in",
			Message: "requested_in must be a valid HH:MM time",
		})
	}

	if r.RequestedOut != nil && !validator.IsValidTimeOfDay(*r.RequestedOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_out",
			Message: "requested_out must be a valid HH:MM time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

type DecideCorrectionRequest struct {
	CorrectionID string   `json:"-"`
	Decision     Decision `json:"decision"`
}

func (r *DecideCorrectionRequest) Validate() error {
	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		return ErrInvalidDecision
	}
	return nil
}

type CorrectionResponse struct {
	ID              string         `json:"id"`
	AttendanceID    string         `json:"attendance_id"`
	UserID          string         `json:"user_id"`
	UserName        string         `json:"user_name"`
	Date            string         `json:"date"`
	RequestedIn     *string        `json:"requested_in,omitempty"`
	RequestedOut    *string        `json:"requested_out,omitempty"`
	RequestedStatus string         `json:"requested_status"`
	Reason          string         `json:"reason"`
	Status          ApprovalStatus `json:"status"`
	CreatedAt       string         `json:"created_at"`
}

func ToResponse(e EditRequest) CorrectionResponse {
	return CorrectionResponse{
		ID:              e.ID,
		AttendanceID:    e.AttendanceID,
		UserID:          e.UserID,
		UserName:        e.UserName,
		Date:            e.Date,
		RequestedIn:     e.RequestedIn,
		RequestedOut:    e.RequestedOut,
		RequestedStatus: e.RequestedStatus,
		Reason:          e.Reason,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToResponseList(requests []EditRequest) []CorrectionResponse {
	out := make([]CorrectionResponse, 0, len(requests))
	for _, e := range requests {
		out = append(out, ToResponse(e))
	}
	return out
}
