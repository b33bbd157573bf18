package permit

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

type SubmitPermitRequest struct {
	UserID     string                `json:"-"`
	UserName   string                `json:"-"`
	Type       PermitType            `json:"type"`
	Date       string                `json:"date"`
	Reason     string                `json:"reason"`
	Latitude   *float64              `json:"latitude,omitempty"`
	Longitude  *float64              `json:"longitude,omitempty"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitPermitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be LEAVE or SICK",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if r.FileHeader != nil {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		allowed := []string{".jpg", ".jpeg", ".png", ".pdf"}
		if !validator.IsInSlice(ext, allowed) {
			errs = append(errs, validator.ValidationError{
				Field:   "evidence",
				Message: "invalid file type: only jpg, jpeg, png, pdf allowed",
			})
		} else if r.FileHeader.Size > 10<<20 {
			errs = append(errs, validator.ValidationError{
				Field:   "evidence",
				Message: "evidence file size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Decision is an admin's verdict on a pending permit.
type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

type DecidePermitRequest struct {
	PermitID string   `json:"-"`
	Decision Decision `json:"decision"`
}

func (r *DecidePermitRequest) Validate() error {
	if r.Decision != DecisionApprove && r.Decision != DecisionReject {
		return ErrInvalidDecision
	}
	return nil
}

type PermitResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	UserName    string         `json:"user_name"`
	Type        PermitType     `json:"type"`
	Date        string         `json:"date"`
	Reason      string         `json:"reason"`
	EvidenceURL *string        `json:"evidence_url,omitempty"`
	Status      ApprovalStatus `json:"status"`
	Lat         *float64       `json:"lat,omitempty"`
	Lng         *float64       `json:"lng,omitempty"`
}

func ToResponse(p Permit) PermitResponse {
	return PermitResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Type:        p.Type,
		Date:        p.Date,
		Reason:      p.Reason,
		EvidenceURL: p.EvidenceURL,
		Status:      p.Status,
		Lat:         p.Lat,
		Lng:         p.Lng,
	}
}

func ToResponseList(permits []Permit) []PermitResponse {
	out := make([]PermitResponse, 0, len(permits))
	for _, p := range permits {
		out = append(out, ToResponse(p))
	}
	return out
}
