package supervisor

import (
	"github.com/sigdev/absensi-magang-backend-go/internal/pkg/validator"
)

type SaveSupervisorRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Division   string `json:"division"`
	EmployeeID string `json:"employee_id"`
}

func (r *SaveSupervisorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Division) {
		errs = append(errs, validator.ValidationError{Field: "division", Message: "division is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
