package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type ResultHandler struct {
	st *store.Store
}

func NewResultHandler(st *store.Store) *ResultHandler {
	return &ResultHandler{st: st}
}

// GET /student/results?semester=
func (h *ResultHandler) MyResults(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	rows, err := h.st.Results.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	if sem := atoiOr(strings.TrimSpace(c.QueryParam("semester")), 0); sem > 0 {
		filtered := make([]models.Result, 0, len(rows))
		for _, r := range rows {
			if r.Semester == sem {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	marks, max := 0, 0
	for _, r := range rows {
		marks += r.Marks
		max += r.MaxMarks
	}
	pct := 0
	if max > 0 {
		pct = marks * 100 / max
	}
	return c.JSON(http.StatusOK, map[string]any{
		"rows":       rows,
		"percentage": pct,
	})
}

// GET /faculty/results?studentId=
func (h *ResultHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	studentID := strings.TrimSpace(c.QueryParam("studentId"))
	var rows []models.Result
	var err error
	if studentID != "" {
		s, gerr := h.st.Students.Get(ctx(c), studentID)
		if gerr != nil || s.OwnerID != ident.ID {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		rows, err = h.st.Results.ListByOwner(ctx(c), studentID)
	} else {
		var ids []string
		ids, err = h.st.RosterIDs(ctx(c), ident.ID)
		if err == nil {
			rows, err = h.st.Results.ListByOwners(ctx(c), ids)
		}
	}
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /faculty/results
func (h *ResultHandler) Publish(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		StudentID   string `json:"student_id" validate:"required"`
		SubjectCode string `json:"subject_code" validate:"required"`
		SubjectName string `json:"subject_name"`
		Semester    int    `json:"semester" validate:"gte=1"`
		Marks       int    `json:"marks" validate:"gte=0"`
		MaxMarks    int    `json:"max_marks" validate:"gt=0"`
		Grade       string `json:"grade"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.st.Students.Get(ctx(c), req.StudentID)
	if err != nil || s.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	r, err := h.st.Results.Create(ctx(c), req.StudentID, models.Result{
		SubjectCode: req.SubjectCode,
		SubjectName: req.SubjectName,
		Semester:    req.Semester,
		Marks:       req.Marks,
		MaxMarks:    req.MaxMarks,
		Grade:       req.Grade,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, r)
}
