package permit

import "time"

// PermitType is the kind of absence being requested.
type PermitType string

const (
	TypeLeave PermitType = "LEAVE"
	TypeSick  PermitType = "SICK"
)

func IsValidType(t PermitType) bool {
	return t == TypeLeave || t == TypeSick
}

// ApprovalStatus is the permit lifecycle: created pending, then decided
// exactly once by an admin.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// Permit is a participant's leave/sick request for one calendar day. The
// store enforces one permit per (UserID, Date). Deciding a permit upserts
// the attendance record for that day as a side effect.
type Permit struct {
	ID          string
	UserID      string
	UserName    string
	Type        PermitType
	Date        string // YYYY-MM-DD
	Reason      string
	EvidenceURL *string
	Status      ApprovalStatus
	Lat         *float64
	Lng         *float64
	CreatedAt   time.Time
}
