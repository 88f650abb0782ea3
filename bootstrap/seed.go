// Package bootstrap pre-populates a faculty's scope with starter
// records so a fresh login doesn't land on a wall of empty states.
// Convenience only; nothing depends on seeded data for correctness.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

// Seed creates a small roster plus per-student records when the
// faculty owns no students yet. Idempotent for a non-empty roster.
func Seed(ctx context.Context, st *store.Store, facultyID string) error {
	existing, err := st.Students.ListByOwner(ctx, facultyID)
	if err != nil {
		return fmt.Errorf("seed: list roster: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	nextWeek := now.AddDate(0, 0, 7).Format("2006-01-02")
	nextMonth := now.AddDate(0, 1, 0).Format("2006-01-02")

	seedStudents := []models.Student{
		{StudentCode: "CS2301", Name: "Aarav Menon", Department: "CS", Year: 2, Semester: 3, Email: "aarav@example.edu"},
		{StudentCode: "CS2302", Name: "Diya Nair", Department: "CS", Year: 2, Semester: 3, Email: "diya@example.edu"},
		{StudentCode: "EC2301", Name: "Rohan Pillai", Department: "EC", Year: 1, Semester: 1, Email: "rohan@example.edu"},
	}

	for _, s := range seedStudents {
		created, err := st.Students.Create(ctx, facultyID, s)
		if err != nil {
			return fmt.Errorf("seed: create student: %w", err)
		}

		for _, a := range []models.Attendance{
			{SubjectCode: "CS201", Date: today, Status: models.AttendancePresent},
			{SubjectCode: "CS202", Date: today, Status: models.AttendanceLate},
		} {
			if _, err := st.Attendance.Create(ctx, created.ID, a); err != nil {
				return fmt.Errorf("seed: create attendance: %w", err)
			}
		}

		if _, err := st.Fees.Create(ctx, created.ID, models.Fee{
			FeeType: "Tuition", Amount: 45000, DueDate: nextMonth, Status: models.FeePending,
		}); err != nil {
			return fmt.Errorf("seed: create fee: %w", err)
		}

		if _, err := st.Notifications.Create(ctx, created.ID, models.Notification{
			Title: "Welcome", Message: "Your portal account is ready.", Type: models.NotifyInfo,
		}); err != nil {
			return fmt.Errorf("seed: create notification: %w", err)
		}
	}

	if _, err := st.Events.Create(ctx, facultyID, models.Event{
		Title: "Orientation", Date: nextWeek, StartTime: "10:00", EndTime: "12:00",
		Location: "Main Auditorium", MaxParticipants: 100, EventType: "seminar",
	}); err != nil {
		return fmt.Errorf("seed: create event: %w", err)
	}

	if _, err := st.Assignments.Create(ctx, facultyID, models.Assignment{
		Title: "Data Structures Worksheet", SubjectCode: "CS201", DueDate: nextWeek, MaxMarks: 20,
	}); err != nil {
		return fmt.Errorf("seed: create assignment: %w", err)
	}

	if _, err := st.TransportRoutes.Create(ctx, facultyID, models.TransportRoute{
		RouteName: "Campus - Central Station", StartPoint: "Campus Gate 2", EndPoint: "Central Station",
		DepartTime: "17:30", Fare: 25, Capacity: 40, DriverName: "K. Suresh", VehicleNo: "KL-07-AX-1221",
	}); err != nil {
		return fmt.Errorf("seed: create transport route: %w", err)
	}

	return nil
}
