package attendance

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	UserID     string                `json:"-"`
	UserName   string                `json:"-"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Note       *string               `json:"note,omitempty"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateLocation(r.Latitude, r.Longitude)...)
	errs = append(errs, validatePhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	UserID     string                `json:"-"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	Note       *string               `json:"note,omitempty"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateLocation(r.Latitude, r.Longitude)...)
	errs = append(errs, validatePhoto(r.FileHeader)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLocation(lat, lng float64) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if lat < -90 || lat > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if lng < -180 || lng > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}
	return errs
}

func validatePhoto(header *multipart.FileHeader) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if header == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo is required",
		})
		return errs
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		})
	} else if header.Size > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "attendance proof photo size must not exceed 10MB",
		})
	}
	return errs
}

// ListFilter filters the admin attendance listing.
type ListFilter struct {
	UserID    string
	StartDate string // YYYY-MM-DD inclusive
	EndDate   string // YYYY-MM-DD inclusive
	Status    string
}

type AttendanceResponse struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	UserName    string   `json:"user_name"`
	Date        string   `json:"date"`
	ClockIn     *string  `json:"clock_in"`
	ClockOut    *string  `json:"clock_out"`
	Status      Status   `json:"status"`
	LateMinutes int      `json:"late_minutes"`
	PhotoInURL  *string  `json:"photo_in_url,omitempty"`
	PhotoOutURL *string  `json:"photo_out_url,omitempty"`
	ClockInLat  *float64 `json:"clock_in_lat,omitempty"`
	ClockInLng  *float64 `json:"clock_in_lng,omitempty"`
	ClockOutLat *float64 `json:"clock_out_lat,omitempty"`
	ClockOutLng *float64 `json:"clock_out_lng,omitempty"`
	Note        *string  `json:"note,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		UserName:    a.UserName,
		Date:        a.Date,
		ClockIn:     a.ClockIn,
		ClockOut:    a.ClockOut,
		Status:      a.Status,
		LateMinutes: a.LateMinutes,
		PhotoInURL:  a.PhotoInURL,
		PhotoOutURL: a.PhotoOutURL,
		ClockInLat:  a.ClockInLat,
		ClockInLng:  a.ClockInLng,
		ClockOutLat: a.ClockOutLat,
		ClockOutLng: a.ClockOutLng,
		Note:        a.Note,
	}
}

func ToResponseList(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, ToResponse(a))
	}
	return out
}
