package permit

import "errors"

var (
	ErrPermitNotFound         = errors.New("permit not found")
	ErrPermitAlreadyExists    = errors.New("a permit has already been submitted for this date")
	ErrPermitAlreadyProcessed = errors.New("permit has already been approved or rejected")
	ErrInvalidDecision        = errors.New("decision must be approve or reject")
)
