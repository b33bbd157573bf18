package attendance

import (
	"testing"

	"github.com/sigdev/absensi-magang-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
)

func scheduleForTest() settings.Settings {
	return settings.Settings{
		ClockInStart:    "08:00",
		ClockInEnd:      "08:30",
		ClockOutStart:   "17:00",
		ClockOutEnd:     "23:59",
		OperationalDays: []int{1, 2, 3, 4, 5},
	}
}

func TestClassifyClockIn(t *testing.T) {
	cfg := scheduleForTest()

	cases := []struct {
		name       string
		timeOfDay  string
		wantStatus Status
		wantLate   int
	}{
		{"well before cutoff", "08:00", StatusPresent, 0},
		{"exactly at cutoff", "08:30", StatusPresent, 0},
		{"one minute past cutoff", "08:31", StatusLate, 1},
		{"an hour late", "09:30", StatusLate, 60},
		{"end of day", "23:59", StatusLate, 929},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, late := ClassifyClockIn(c.timeOfDay, cfg)
			assert.Equal(t, c.wantStatus, status)
			assert.Equal(t, c.wantLate, late)
		})
	}
}

func TestWithinClockOutWindow(t *testing.T) {
	cfg := scheduleForTest()

	assert.False(t, WithinClockOutWindow("16:59", cfg))
	assert.True(t, WithinClockOutWindow("17:00", cfg))
	assert.True(t, WithinClockOutWindow("20:30", cfg))
	assert.True(t, WithinClockOutWindow("23:59", cfg))
	assert.False(t, WithinClockOutWindow("08:00", cfg))
}

func TestBeforeClockInWindow(t *testing.T) {
	cfg := scheduleForTest()

	assert.True(t, BeforeClockInWindow("07:59", cfg))
	assert.False(t, BeforeClockInWindow("08:00", cfg))
	assert.False(t, BeforeClockInWindow("08:31", cfg))
}

func TestSyntheticRecordIDs(t *testing.T) {
	assert.Equal(t, "HOL-u1-2024-01-15", HolidayRecordID("u1", "2024-01-15"))
	assert.Equal(t, "ALP-u1-2024-01-16", AbsenceRecordID("u1", "2024-01-16"))
	assert.Equal(t, "ATT-PRM-p42", PermitRecordID("p42"))
}
