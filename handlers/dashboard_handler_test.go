package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

func TestDashboardMenuStudentOverview(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewDashboardHandler(st)

	_, roster := seedFacultyRoster(t, st)
	ctxb := context.Background()
	target := roster[0]

	for _, status := range []string{models.AttendancePresent, models.AttendanceAbsent} {
		_, err := st.Attendance.Create(ctxb, target.ID, models.Attendance{
			SubjectCode: "CS201", Date: "2026-01-05", Status: status,
		})
		require.NoError(t, err)
	}
	_, err := st.Notifications.Create(ctxb, target.ID, models.Notification{Title: "n", Type: models.NotifyInfo})
	require.NoError(t, err)

	ident := studentIdentity(target)
	rec := call(t, e, h.Menu, http.MethodGet, "/student/dashboard", "", &ident)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	assert.Equal(t, "dashboard", out["default_panel"])
	assert.NotEmpty(t, out["menu"])

	overview := out["overview"].(map[string]any)
	assert.Equal(t, 50.0, overview["attendance_percentage"])
	assert.Equal(t, 1.0, overview["unread_notifications"])
}

func TestDashboardPanelFallback(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewDashboardHandler(st)

	ident := models.Identity{ID: "stu-1", Role: models.RoleStudent}

	rec := call(t, e, h.Panel, http.MethodGet, "/student/dashboard/panels/library", "", &ident, "id", "library")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, false, out["available"])
	panel := out["panel"].(map[string]any)
	assert.Equal(t, "unavailable", panel["id"])

	// faculty-only panel is unavailable to students
	rec = call(t, e, h.Panel, http.MethodGet, "/student/dashboard/panels/students", "", &ident, "id", "students")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode(t, rec)["available"])
}

func TestDashboardMenuRequiresIdentity(t *testing.T) {
	e := newEcho()
	h := NewDashboardHandler(store.NewMemory())

	rec := call(t, e, h.Menu, http.MethodGet, "/student/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
