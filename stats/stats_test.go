package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/unicampus/portal/models"
)

func att(status string) models.Attendance {
	return models.Attendance{SubjectCode: "CS201", Date: "2026-01-05", Status: status}
}

func TestAttendancePercentage(t *testing.T) {
	recs := []models.Attendance{
		att(models.AttendancePresent),
		att(models.AttendancePresent),
		att(models.AttendanceAbsent),
		att(models.AttendanceLate),
	}
	// late does not count as attended
	assert.Equal(t, 50, AttendancePercentage(recs))
}

func TestAttendancePercentageRounds(t *testing.T) {
	recs := []models.Attendance{
		att(models.AttendancePresent),
		att(models.AttendancePresent),
		att(models.AttendanceAbsent),
	}
	assert.Equal(t, 67, AttendancePercentage(recs))
}

func TestAttendancePercentageEmpty(t *testing.T) {
	assert.Equal(t, 0, AttendancePercentage(nil))
}

func TestPendingFeesTotal(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	fees := []models.Fee{
		{FeeType: "Tuition", Amount: 45000, DueDate: "2026-04-01", Status: models.FeePending},
		{FeeType: "Lab", Amount: 1500, DueDate: "2026-02-01", Status: models.FeePending}, // overdue, still owed
		{FeeType: "Hostel", Amount: 20000, DueDate: "2026-02-01", Status: models.FeePaid},
	}
	assert.Equal(t, 46500.0, PendingFeesTotal(fees, now))
}

func TestUnreadCount(t *testing.T) {
	ns := []models.Notification{
		{Title: "a", Read: false},
		{Title: "b", Read: true},
		{Title: "c", Read: false},
	}
	assert.Equal(t, 2, UnreadCount(ns))
}

func TestFeeEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	pending := models.Fee{DueDate: "2026-04-01", Status: models.FeePending}
	assert.Equal(t, models.FeePending, pending.EffectiveStatus(now))

	overdue := models.Fee{DueDate: "2026-02-01", Status: models.FeePending}
	assert.Equal(t, models.FeeOverdue, overdue.EffectiveStatus(now))

	paid := models.Fee{DueDate: "2026-02-01", Status: models.FeePaid}
	assert.Equal(t, models.FeePaid, paid.EffectiveStatus(now))
}
