package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type ProfileHandler struct {
	st *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{st: st}
}

// GET /student/profile and /faculty/profile
func (h *ProfileHandler) Get(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	switch ident.Role {
	case models.RoleStudent:
		s, err := h.st.Students.Get(ctx(c), ident.ID)
		if err != nil {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return c.JSON(http.StatusOK, s)
	case models.RoleFaculty:
		f, err := h.st.Faculty.Get(ctx(c), ident.ID)
		if err != nil {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return c.JSON(http.StatusOK, f)
	default:
		return errJSON(c, http.StatusForbidden, "FORBIDDEN")
	}
}

// PUT /student/profile and /faculty/profile — contact fields only; the
// academic attributes are faculty-managed through the roster.
func (h *ProfileHandler) Update(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}

	switch ident.Role {
	case models.RoleStudent:
		s, err := h.st.Students.Get(ctx(c), ident.ID)
		if err != nil {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		if req.Email != "" {
			s.Email = req.Email
		}
		if req.Phone != "" {
			s.Phone = req.Phone
		}
		if req.Address != "" {
			s.Address = req.Address
		}
		updated, err := h.st.Students.Update(ctx(c), s)
		if err != nil {
			return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
		}
		return c.JSON(http.StatusOK, updated)
	case models.RoleFaculty:
		f, err := h.st.Faculty.Get(ctx(c), ident.ID)
		if err != nil {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		if req.Email != "" {
			f.Email = req.Email
		}
		if req.Phone != "" {
			f.Phone = req.Phone
		}
		updated, err := h.st.Faculty.Update(ctx(c), f)
		if err != nil {
			return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
		}
		return c.JSON(http.StatusOK, updated)
	default:
		return errJSON(c, http.StatusForbidden, "FORBIDDEN")
	}
}
