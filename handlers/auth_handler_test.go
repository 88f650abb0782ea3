package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/unicampus/portal/auth"
	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/session"
	"github.com/unicampus/portal/store"
)

func newAuthHandler(t *testing.T, st *store.Store, mode string) *AuthHandler {
	t.Helper()
	strategy, err := auth.NewStrategy(mode, st, zap.NewNop())
	require.NoError(t, err)
	return NewAuthHandler("test-secret", strategy, session.NewManager(session.NewMemoryKV()), st, zap.NewNop())
}

func TestDevLoginSynthesizesStudent(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeDev)

	rec := call(t, e, h.StudentLogin, http.MethodPost, "/auth/student/login",
		`{"username":"CS9901","password":"anything"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	assert.NotEmpty(t, out["token"])
	user := out["user"].(map[string]any)
	assert.Equal(t, models.RoleStudent, user["role"])
	assert.Equal(t, "CS9901", user["display_name"])

	// the backing record was created
	students, err := st.Students.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "CS9901", students[0].StudentCode)

	// and logging in again reuses it
	rec = call(t, e, h.StudentLogin, http.MethodPost, "/auth/student/login",
		`{"username":"CS9901","password":"other"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	students, err = st.Students.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestDevFacultyLoginSeedsStarterData(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeDev)

	rec := call(t, e, h.FacultyLogin, http.MethodPost, "/auth/faculty/login",
		`{"username":"F-100","password":"x"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	students, err := st.Students.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, students, "faculty login on an empty roster seeds starter records")
}

func TestCredentialsLoginRejectsBadPassword(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeCredentials)

	hash, err := bcrypt.GenerateFromPassword([]byte("faculty123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = st.Users.Create(context.Background(), "", models.User{
		Username: "faculty", Password: string(hash), Role: models.RoleFaculty, Name: "Dr. Anil Krishnan",
	})
	require.NoError(t, err)

	rec := call(t, e, h.FacultyLogin, http.MethodPost, "/auth/faculty/login",
		`{"username":"faculty","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec)["error"])
}

func TestSessionRestoreAfterLogin(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeDev)

	rec := call(t, e, h.StudentLogin, http.MethodPost, "/auth/student/login",
		`{"username":"CS9901","password":"x"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"]

	rec = call(t, e, h.Session, http.MethodGet, "/auth/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, token, decode(t, rec)["token"])
}

func TestLogoutClearsSessionAndIsIdempotent(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeDev)

	rec := call(t, e, h.StudentLogin, http.MethodPost, "/auth/student/login",
		`{"username":"CS9901","password":"x"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	for i := 0; i < 2; i++ {
		rec = call(t, e, h.Logout, http.MethodPost, "/auth/logout", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = call(t, e, h.Session, http.MethodGet, "/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := newAuthHandler(t, st, config.AuthModeDev)

	rec := call(t, e, h.StudentLogin, http.MethodPost, "/auth/student/login",
		`{"username":"CS9901"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
