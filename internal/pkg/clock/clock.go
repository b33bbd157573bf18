package clock

import "time"

// Clock supplies the server-authoritative wall-clock. Every "today" or
// "current time" decision (clock-in gating, late computation, the
// reconciliation boundary) goes through this interface so it can never be
// influenced by a client-supplied timestamp, and so tests can pin time.
type Clock interface {
	Now() time.Time
}

// ServerTime is the snapshot handed to clients and services. Time and Date
// are local wall-clock strings; schedules in this system are always compared
// as local times of day, never as instants.
type ServerTime struct {
	ISO  string `json:"iso"`
	Time string `json:"time"` // HH:MM
	Date string `json:"date"` // YYYY-MM-DD
}

// At renders a single instant. Callers that need both the instant and its
// string forms read the clock once and derive everything from that reading,
// so the date and weekday can never straddle midnight within one operation.
func At(t time.Time) ServerTime {
	return ServerTime{
		ISO:  t.Format(time.RFC3339),
		Time: t.Format("15:04"),
		Date: t.Format("2006-01-02"),
	}
}

// Snapshot renders the clock's current reading.
func Snapshot(c Clock) ServerTime {
	return At(c.Now())
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock pinned to the given IANA timezone. An
// unknown timezone falls back to UTC.
func NewSystemClock(timezone string) Clock {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
