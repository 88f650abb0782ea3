package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type AssignmentHandler struct {
	st *store.Store
}

func NewAssignmentHandler(st *store.Store) *AssignmentHandler {
	return &AssignmentHandler{st: st}
}

// GET /student/assignments — assignments published by the student's
// faculty, with the student's own submission attached when present.
func (h *AssignmentHandler) MyAssignments(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	assignments, err := h.st.Assignments.ListByOwner(ctx(c), me.OwnerID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	subs, err := h.st.Submissions.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	byAssignment := map[string]models.Submission{}
	for _, s := range subs {
		byAssignment[s.AssignmentID] = s
	}

	type row struct {
		models.Assignment
		Submission *models.Submission `json:"submission,omitempty"`
	}
	out := make([]row, 0, len(assignments))
	for _, a := range assignments {
		r := row{Assignment: a}
		if s, ok := byAssignment[a.ID]; ok {
			sub := s
			r.Submission = &sub
		}
		out = append(out, r)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /student/assignments/:id/submit
func (h *AssignmentHandler) Submit(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		Content string `json:"content" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	assignment, err := h.st.Assignments.Get(ctx(c), c.Param("id"))
	if err != nil || assignment.OwnerID != me.OwnerID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	existing, err := h.st.Submissions.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	for _, s := range existing {
		if s.AssignmentID == assignment.ID {
			return errJSON(c, http.StatusConflict, "ALREADY_SUBMITTED")
		}
	}

	sub, err := h.st.Submissions.Create(ctx(c), ident.ID, models.Submission{
		AssignmentID: assignment.ID,
		Content:      strings.TrimSpace(req.Content),
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, sub)
}

// GET /faculty/assignments
func (h *AssignmentHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	rows, err := h.st.Assignments.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /faculty/assignments
func (h *AssignmentHandler) Create(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		Title       string `json:"title" validate:"required"`
		SubjectCode string `json:"subject_code"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		MaxMarks    int    `json:"max_marks"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a, err := h.st.Assignments.Create(ctx(c), ident.ID, models.Assignment{
		Title:       req.Title,
		SubjectCode: req.SubjectCode,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxMarks:    req.MaxMarks,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, a)
}

// PUT /faculty/assignments/:id
func (h *AssignmentHandler) Update(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	a, err := h.st.Assignments.Get(ctx(c), c.Param("id"))
	if err != nil || a.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	var req struct {
		Title       string `json:"title"`
		SubjectCode string `json:"subject_code"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
		MaxMarks    *int   `json:"max_marks"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if req.Title != "" {
		a.Title = req.Title
	}
	if req.SubjectCode != "" {
		a.SubjectCode = req.SubjectCode
	}
	if req.Description != "" {
		a.Description = req.Description
	}
	if req.DueDate != "" {
		a.DueDate = req.DueDate
	}
	if req.MaxMarks != nil {
		a.MaxMarks = *req.MaxMarks
	}

	updated, err := h.st.Assignments.Update(ctx(c), a)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// DELETE /faculty/assignments/:id
func (h *AssignmentHandler) Delete(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	a, err := h.st.Assignments.Get(ctx(c), c.Param("id"))
	if err != nil || a.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if _, err := h.st.Assignments.Delete(ctx(c), a.ID); err != nil {
		return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /faculty/assignments/:id/submissions — roster submissions for
// one assignment (join over the student relationship).
func (h *AssignmentHandler) Submissions(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	a, err := h.st.Assignments.Get(ctx(c), c.Param("id"))
	if err != nil || a.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	ids, err := h.st.RosterIDs(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	subs, err := h.st.Submissions.ListByOwners(ctx(c), ids)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	out := make([]models.Submission, 0, len(subs))
	for _, s := range subs {
		if s.AssignmentID == a.ID {
			out = append(out, s)
		}
	}
	return c.JSON(http.StatusOK, out)
}

// POST /faculty/submissions/:id/grade
func (h *AssignmentHandler) Grade(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		Marks  int    `json:"marks" validate:"gte=0"`
		Remark string `json:"remark"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sub, err := h.st.Submissions.Get(ctx(c), c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	// grading is only valid for a submission against this faculty's
	// own assignment
	a, err := h.st.Assignments.Get(ctx(c), sub.AssignmentID)
	if err != nil || a.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	sub.Marks = &req.Marks
	sub.Remark = strings.TrimSpace(req.Remark)
	updated, err := h.st.Submissions.Update(ctx(c), sub)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}
