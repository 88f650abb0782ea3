// Package stats derives the summary numbers the dashboards display.
// Pure functions over fetched records, computed fresh on every
// request; the row counts here are small enough that caching would be
// pure overhead.
package stats

import (
	"math"
	"time"

	"github.com/unicampus/portal/models"
)

// AttendancePercentage counts only "present" as attended and rounds to
// the nearest integer. An empty record set is 0, not an error.
func AttendancePercentage(recs []models.Attendance) int {
	if len(recs) == 0 {
		return 0
	}
	present := 0
	for _, r := range recs {
		if r.Status == models.AttendancePresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(recs)) * 100))
}

// PendingFeesTotal sums everything not yet paid, including fees that
// read as overdue at the given time.
func PendingFeesTotal(fees []models.Fee, now time.Time) float64 {
	var total float64
	for _, f := range fees {
		if s := f.EffectiveStatus(now); s == models.FeePending || s == models.FeeOverdue {
			total += f.Amount
		}
	}
	return total
}

// UnreadCount counts notifications not yet marked read.
func UnreadCount(ns []models.Notification) int {
	n := 0
	for _, r := range ns {
		if !r.Read {
			n++
		}
	}
	return n
}
