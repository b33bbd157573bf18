package settings

import (
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	ClockInStart    string   `json:"clock_in_start"`
	ClockInEnd      string   `json:"clock_in_end"`
	ClockOutStart   string   `json:"clock_out_start"`
	ClockOutEnd     string   `json:"clock_out_end"`
	OperationalDays []int    `json:"operational_days"`
	Holidays        []string `json:"holidays"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	times := map[string]string{
		"clock_in_start":  r.ClockInStart,
		"clock_in_end":    r.ClockInEnd,
		"clock_out_start": r.ClockOutStart,
		"clock_out_end":   r.ClockOutEnd,
	}
	for field, value := range times {
		if !validator.IsValidTimeOfDay(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a valid HH:MM time",
			})
		}
	}

	for _, day := range r.OperationalDays {
		if day < 0 || day > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "operational_days",
				Message: "weekday numbers must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	for _, holiday := range r.Holidays {
		if _, ok := validator.IsValidDate(holiday); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "holidays",
				Message: "holiday dates must be valid YYYY-MM-DD dates",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateSettingsRequest) ToSettings() Settings {
	return Settings{
		ClockInStart:    r.ClockInStart,
		ClockInEnd:      r.ClockInEnd,
		ClockOutStart:   r.ClockOutStart,
		ClockOutEnd:     r.ClockOutEnd,
		OperationalDays: r.OperationalDays,
		Holidays:        r.Holidays,
	}
}
