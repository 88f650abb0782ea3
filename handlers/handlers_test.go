package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/portal/middlewares"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// call runs a handler through a synthetic echo context. ident nil means
// unauthenticated; params are name/value pairs for path parameters.
func call(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, path, body string, ident *models.Identity, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.Zero(t, len(params)%2, "params must be name/value pairs")
	names := make([]string, 0, len(params)/2)
	values := make([]string, 0, len(params)/2)
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if ident != nil {
		middlewares.SetIdentity(c, *ident)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// seedFacultyRoster creates a faculty-owned roster of three students
// and returns the faculty identity plus the student records.
func seedFacultyRoster(t *testing.T, st *store.Store) (models.Identity, []models.Student) {
	t.Helper()
	ctxb := context.Background()

	fac, err := st.Faculty.Create(ctxb, "", models.Faculty{
		FacultyCode: "F-100", Name: "Dr. Anil Krishnan", Department: "CS",
	})
	require.NoError(t, err)

	var out []models.Student
	for _, s := range []models.Student{
		{StudentCode: "CS2301", Name: "Aarav Menon", Department: "CS", Year: 2, Semester: 3},
		{StudentCode: "CS2302", Name: "Diya Sharma", Department: "CS", Year: 2, Semester: 3},
		{StudentCode: "EC2301", Name: "Rohan Iyer", Department: "EC", Year: 1, Semester: 1},
	} {
		created, err := st.Students.Create(ctxb, fac.ID, s)
		require.NoError(t, err)
		out = append(out, created)
	}
	return models.Identity{ID: fac.ID, DisplayName: fac.Name, Role: models.RoleFaculty, Department: fac.Department}, out
}

func studentIdentity(s models.Student) models.Identity {
	return models.Identity{
		ID: s.ID, DisplayName: s.Name, Role: models.RoleStudent,
		Department: s.Department, Year: s.Year, Semester: s.Semester, FacultyID: s.OwnerID,
	}
}
