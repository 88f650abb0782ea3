// Package dashboard is the panel registry: each role gets an ordered
// menu of panels and exactly one panel is active at a time. Lookup by
// id replaces the string-switch dispatch a portal like this usually
// accretes.
package dashboard

import "github.com/unicampus/portal/models"

type PanelID string

const (
	PanelOverview      PanelID = "dashboard"
	PanelAttendance    PanelID = "attendance"
	PanelFees          PanelID = "fees"
	PanelAssignments   PanelID = "assignments"
	PanelResults       PanelID = "results"
	PanelEvents        PanelID = "events"
	PanelTransport     PanelID = "transport"
	PanelNotifications PanelID = "notifications"
	PanelMessages      PanelID = "messages"
	PanelProfile       PanelID = "profile"
	PanelStudents      PanelID = "students"
)

type Panel struct {
	ID    PanelID `json:"id"`
	Title string  `json:"title"`
}

// Unavailable is rendered for any panel id outside the role's menu;
// an unknown id must never crash the shell.
var Unavailable = Panel{ID: "unavailable", Title: "Feature not available"}

var studentMenu = []Panel{
	{PanelOverview, "Dashboard"},
	{PanelAttendance, "Attendance"},
	{PanelFees, "Fees"},
	{PanelAssignments, "Assignments"},
	{PanelResults, "Results"},
	{PanelEvents, "Events"},
	{PanelTransport, "Transport"},
	{PanelNotifications, "Notifications"},
	{PanelMessages, "Messages"},
	{PanelProfile, "Profile"},
}

var facultyMenu = []Panel{
	{PanelOverview, "Dashboard"},
	{PanelStudents, "Students"},
	{PanelAttendance, "Attendance"},
	{PanelFees, "Fees"},
	{PanelAssignments, "Assignments"},
	{PanelResults, "Results"},
	{PanelEvents, "Events"},
	{PanelTransport, "Transport"},
	{PanelNotifications, "Notifications"},
	{PanelMessages, "Messages"},
	{PanelProfile, "Profile"},
}

// Default is the panel activated right after login.
func Default() PanelID { return PanelOverview }

// Menu returns the ordered panel list for a role. Unknown roles get an
// empty menu.
func Menu(role string) []Panel {
	switch role {
	case models.RoleStudent:
		return studentMenu
	case models.RoleFaculty:
		return facultyMenu
	default:
		return nil
	}
}

// Lookup resolves a panel id within a role's menu. The second return
// is false when the id is not available for that role; callers render
// Unavailable in that case.
func Lookup(role string, id PanelID) (Panel, bool) {
	for _, p := range Menu(role) {
		if p.ID == id {
			return p, true
		}
	}
	return Unavailable, false
}
