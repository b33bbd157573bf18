package user

import "time"

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleParticipant Role = "PARTICIPANT"
)

// AccountStatus is the participant account lifecycle. Registration creates a
// PENDING account; an admin activates it before the participant can sign in.
type AccountStatus string

const (
	AccountPending  AccountStatus = "PENDING"
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
)

// User is a participant or administrator. StartDate/EndDate bound a
// participant's enrollment period; reconciliation derives statuses for every
// day from StartDate to the present.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	AccountStatus   AccountStatus
	University      *string
	Major           *string
	Division        *string
	Phone           *string
	PhotoURL        *string
	SupervisorID    *string
	SupervisorName  *string
	StartDate       *string // YYYY-MM-DD, enrollment start
	EndDate         *string // YYYY-MM-DD
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.AccountStatus == AccountActive
}
