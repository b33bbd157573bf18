package attendance

import (
	"fmt"
	"time"
)

// Status is the terminal daily state of one attendance record. Exactly one
// holds per record; transitions happen only through clock-in/out, permit
// decisions, reconciliation, or an approved correction.
type Status string

const (
	StatusPresent        Status = "PRESENT"
	StatusLate           Status = "LATE"
	StatusLeave          Status = "LEAVE"
	StatusSick           Status = "SICK"
	StatusAbsent         Status = "ABSENT"           // assessed by an admin (rejected permit)
	StatusAbsentBySystem Status = "ABSENT_BY_SYSTEM" // assessed by reconciliation
	StatusClockedOut     Status = "CLOCKED_OUT"
	StatusHoliday        Status = "COMPANY_HOLIDAY"
)

// ValidStatuses lists every status a record may hold.
var ValidStatuses = []Status{
	StatusPresent, StatusLate, StatusLeave, StatusSick,
	StatusAbsent, StatusAbsentBySystem, StatusClockedOut, StatusHoliday,
}

func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Attendance is one participant's record for one calendar day. At most one
// record exists per (UserID, Date); once a record exists for a date, that
// day's status question is answered and reconciliation never touches it.
type Attendance struct {
	ID          string
	UserID      string
	UserName    string
	Date        string  // YYYY-MM-DD, no time component
	ClockIn     *string // HH:MM, nil until clocked in
	ClockOut    *string // HH:MM, nil until clocked out
	Status      Status
	LateMinutes int
	PhotoInURL  *string
	PhotoOutURL *string
	ClockInLat  *float64
	ClockInLng  *float64
	ClockOutLat *float64
	ClockOutLng *float64
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Deterministic identifiers for synthetic records. Repeated reconciliation
// runs and permit-decision replays resolve to the same row through the
// store's upsert, which is what makes both safe to re-run.
func HolidayRecordID(userID, date string) string {
	return fmt.Sprintf("HOL-%s-%s", userID, date)
}

func AbsenceRecordID(userID, date string) string {
	return fmt.Sprintf("ALP-%s-%s", userID, date)
}

func PermitRecordID(permitID string) string {
	return fmt.Sprintf("ATT-PRM-%s", permitID)
}

// Notes written on synthetic records so a reader can tell them apart from
// human submissions.
const (
	NoteHoliday        = "System: company holiday."
	NoteAbsentBySystem = "System: no daily attendance submitted by end of day."
	NoteCorrected      = "System: corrected by admin and supervisor."
)
