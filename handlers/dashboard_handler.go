package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/dashboard"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/stats"
	"github.com/unicampus/portal/store"
)

type DashboardHandler struct {
	st *store.Store
}

func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{st: st}
}

// GET /student/dashboard and /faculty/dashboard
// Returns the role's menu, the default panel and the overview stats.
func (h *DashboardHandler) Menu(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var overview map[string]any
	var err error
	switch ident.Role {
	case models.RoleStudent:
		overview, err = h.studentOverview(c, ident)
	case models.RoleFaculty:
		overview, err = h.facultyOverview(c, ident)
	}
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "OVERVIEW_FAILED")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"identity":      ident,
		"default_panel": dashboard.Default(),
		"menu":          dashboard.Menu(ident.Role),
		"overview":      overview,
	})
}

// GET /student/dashboard/panels/:id and /faculty/dashboard/panels/:id
// Resolves a panel by id; an id outside the role's menu renders the
// "feature not available" placeholder instead of failing.
func (h *DashboardHandler) Panel(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	panel, available := dashboard.Lookup(ident.Role, dashboard.PanelID(c.Param("id")))
	return c.JSON(http.StatusOK, map[string]any{
		"panel":     panel,
		"available": available,
	})
}

func (h *DashboardHandler) studentOverview(c echo.Context, ident models.Identity) (map[string]any, error) {
	att, err := h.st.Attendance.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	fees, err := h.st.Fees.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	notifs, err := h.st.Notifications.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"attendance_percentage": stats.AttendancePercentage(att),
		"pending_fees_total":    stats.PendingFeesTotal(fees, time.Now()),
		"unread_notifications":  stats.UnreadCount(notifs),
	}, nil
}

func (h *DashboardHandler) facultyOverview(c echo.Context, ident models.Identity) (map[string]any, error) {
	students, err := h.st.Students.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	events, err := h.st.Events.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	assignments, err := h.st.Assignments.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	fees, err := h.st.Fees.ListByOwners(ctx(c), ids)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"students":           len(students),
		"events":             len(events),
		"assignments":        len(assignments),
		"pending_fees_total": stats.PendingFeesTotal(fees, time.Now()),
	}, nil
}
