package correction

import "time"

// ApprovalStatus is the correction lifecycle: Pending, then Approved or
// Rejected, both terminal.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// EditRequest is a participant's proposal to replace an existing attendance
// record's times and status. At most one pending request may exist per
// attendance record; approval overwrites the record destructively.
type EditRequest struct {
	ID              string
	AttendanceID    string
	UserID          string
	UserName        string
	Date            string // YYYY-MM-DD
	RequestedIn     *string
	RequestedOut    *string
	RequestedStatus string
	Reason          string
	Status          ApprovalStatus
	CreatedAt       time.Time
}
