package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

// StudentHandler manages the faculty's roster.
type StudentHandler struct {
	st *store.Store
}

func NewStudentHandler(st *store.Store) *StudentHandler {
	return &StudentHandler{st: st}
}

// GET /faculty/students?q=&department=&year=
func (h *StudentHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	rows, err := h.st.Students.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}

	q := strings.ToLower(strings.TrimSpace(c.QueryParam("q")))
	dept := strings.TrimSpace(c.QueryParam("department"))
	year := atoiOr(strings.TrimSpace(c.QueryParam("year")), 0)

	out := make([]models.Student, 0, len(rows))
	for _, s := range rows {
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.StudentCode), q) {
			continue
		}
		if dept != "" && s.Department != dept {
			continue
		}
		if year > 0 && s.Year != year {
			continue
		}
		out = append(out, s)
	}
	return c.JSON(http.StatusOK, out)
}

type studentReq struct {
	StudentCode string `json:"student_code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department" validate:"required"`
	Year        int    `json:"year" validate:"gte=1"`
	Semester    int    `json:"semester" validate:"gte=1"`
	Address     string `json:"address"`
}

// POST /faculty/students
func (h *StudentHandler) Create(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req studentReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.st.Students.Create(ctx(c), ident.ID, models.Student{
		StudentCode: req.StudentCode,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		Year:        req.Year,
		Semester:    req.Semester,
		Address:     req.Address,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, s)
}

// PUT /faculty/students/:id
func (h *StudentHandler) Update(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	s, err := h.st.Students.Get(ctx(c), c.Param("id"))
	if err != nil || s.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	var req studentReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s.StudentCode = req.StudentCode
	s.Name = req.Name
	s.Email = req.Email
	s.Phone = req.Phone
	s.Department = req.Department
	s.Year = req.Year
	s.Semester = req.Semester
	s.Address = req.Address

	updated, err := h.st.Students.Update(ctx(c), s)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// DELETE /faculty/students/:id — removes the roster row only; the
// student's scoped records stay until deleted through their own
// panels, consistent with the store's no-cascade contract.
func (h *StudentHandler) Delete(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	s, err := h.st.Students.Get(ctx(c), c.Param("id"))
	if err != nil || s.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if _, err := h.st.Students.Delete(ctx(c), s.ID); err != nil {
		return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
