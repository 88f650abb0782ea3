package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/stats"
	"github.com/unicampus/portal/store"
)

type AttendanceHandler struct {
	st *store.Store
}

func NewAttendanceHandler(st *store.Store) *AttendanceHandler {
	return &AttendanceHandler{st: st}
}

// GET /student/attendance?start=YYYY-MM-DD&end=YYYY-MM-DD&statuses=present,late&subject=CS201
// Filtering is applied after the owner-scoped read and never touches
// the store.
func (h *AttendanceHandler) MyAttendance(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	rows, err := h.st.Attendance.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	rows = filterAttendance(rows,
		strings.TrimSpace(c.QueryParam("start")),
		strings.TrimSpace(c.QueryParam("end")),
		strings.TrimSpace(c.QueryParam("statuses")),
		strings.TrimSpace(c.QueryParam("subject")),
	)

	return c.JSON(http.StatusOK, map[string]any{
		"rows":       rows,
		"percentage": stats.AttendancePercentage(rows),
	})
}

// GET /faculty/attendance?studentId=...  (omitting studentId reads the
// whole roster)
func (h *AttendanceHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	studentID := strings.TrimSpace(c.QueryParam("studentId"))
	var rows []models.Attendance
	var err error
	if studentID != "" {
		if !h.inRoster(c, ident.ID, studentID) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		rows, err = h.st.Attendance.ListByOwner(ctx(c), studentID)
	} else {
		var ids []string
		ids, err = h.st.RosterIDs(ctx(c), ident.ID)
		if err == nil {
			rows, err = h.st.Attendance.ListByOwners(ctx(c), ids)
		}
	}
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}

	rows = filterAttendance(rows,
		strings.TrimSpace(c.QueryParam("start")),
		strings.TrimSpace(c.QueryParam("end")),
		strings.TrimSpace(c.QueryParam("statuses")),
		strings.TrimSpace(c.QueryParam("subject")),
	)
	return c.JSON(http.StatusOK, rows)
}

// POST /faculty/attendance/mark
func (h *AttendanceHandler) Mark(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		StudentID   string `json:"student_id" validate:"required"`
		SubjectCode string `json:"subject_code" validate:"required"`
		Date        string `json:"date" validate:"required"`
		Status      string `json:"status" validate:"required,oneof=present absent late"`
		Note        string `json:"note"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if !h.inRoster(c, ident.ID, req.StudentID) {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	rec, err := h.st.Attendance.Create(ctx(c), req.StudentID, models.Attendance{
		SubjectCode: req.SubjectCode,
		Date:        req.Date,
		Status:      req.Status,
		Note:        strings.TrimSpace(req.Note),
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusOK, rec)
}

// inRoster checks the marked student belongs to this faculty; records
// outside the scope read as absent, not forbidden.
func (h *AttendanceHandler) inRoster(c echo.Context, facultyID, studentID string) bool {
	s, err := h.st.Students.Get(ctx(c), studentID)
	return err == nil && s.OwnerID == facultyID
}

func filterAttendance(rows []models.Attendance, start, end, statuses, subject string) []models.Attendance {
	var allowed map[string]struct{}
	if statuses != "" {
		allowed = map[string]struct{}{}
		for _, s := range splitCSV(statuses) {
			allowed[s] = struct{}{}
		}
	}
	out := make([]models.Attendance, 0, len(rows))
	for _, r := range rows {
		if start != "" && r.Date < start {
			continue
		}
		if end != "" && r.Date > end {
			continue
		}
		if subject != "" && r.SubjectCode != subject {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[r.Status]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
