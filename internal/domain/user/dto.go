package user

import (
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID             string  `json:"-"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       *string `json:"password,omitempty"` // set only when changing
	University     *string `json:"university,omitempty"`
	Major          *string `json:"major,omitempty"`
	Division       *string `json:"division,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	AccountStatus  string  `json:"account_status"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid address"})
	}
	switch AccountStatus(r.AccountStatus) {
	case AccountPending, AccountActive, AccountInactive:
	default:
		errs = append(errs, validator.ValidationError{Field: "account_status", Message: "account_status must be PENDING, ACTIVE or INACTIVE"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a valid YYYY-MM-DD date"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a valid YYYY-MM-DD date"})
		}
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid Indonesian number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           Role    `json:"role"`
	AccountStatus  string  `json:"account_status"`
	University     *string `json:"university,omitempty"`
	Major          *string `json:"major,omitempty"`
	Division       *string `json:"division,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	SupervisorID   *string `json:"supervisor_id,omitempty"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		AccountStatus:  string(u.AccountStatus),
		University:     u.University,
		Major:          u.Major,
		Division:       u.Division,
		Phone:          u.Phone,
		PhotoURL:       u.PhotoURL,
		SupervisorID:   u.SupervisorID,
		SupervisorName: u.SupervisorName,
		StartDate:      u.StartDate,
		EndDate:        u.EndDate,
	}
}

func ToResponseList(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToResponse(u))
	}
	return out
}
