// Package auth holds the two login strategies. Which one runs is
// decided once at startup from AUTH_MODE, never per login attempt.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Strategy interface {
	// Login resolves an Identity for the given role. role is the auth
	// surface the request came through (student or faculty login).
	Login(ctx context.Context, role, username, password string) (models.Identity, error)
}

func NewStrategy(mode string, st *store.Store, log *zap.Logger) (Strategy, error) {
	switch mode {
	case config.AuthModeCredentials:
		return &credentialStrategy{st: st}, nil
	case config.AuthModeDev:
		return &devStrategy{st: st, log: log}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", mode)
	}
}

// credentialStrategy verifies a bcrypt hash against the users table.
type credentialStrategy struct {
	st *store.Store
}

func (s *credentialStrategy) Login(ctx context.Context, role, username, password string) (models.Identity, error) {
	users, err := s.st.Users.List(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	var found *models.User
	for i := range users {
		if users[i].Username == username && users[i].Role == role {
			found = &users[i]
			break
		}
	}
	if found == nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)) != nil {
		return models.Identity{}, ErrInvalidCredentials
	}
	return s.identityFor(ctx, found)
}

func (s *credentialStrategy) identityFor(ctx context.Context, u *models.User) (models.Identity, error) {
	ident := models.Identity{
		ID:          u.ProfileID,
		DisplayName: u.Name,
		Role:        u.Role,
	}
	if ident.ID == "" {
		ident.ID = u.ID
	}
	switch u.Role {
	case models.RoleStudent:
		if st, err := s.st.Students.Get(ctx, u.ProfileID); err == nil {
			ident.Department = st.Department
			ident.Year = st.Year
			ident.Semester = st.Semester
			ident.FacultyID = st.OwnerID
			if ident.DisplayName == "" {
				ident.DisplayName = st.Name
			}
		}
	case models.RoleFaculty:
		if f, err := s.st.Faculty.Get(ctx, u.ProfileID); err == nil {
			ident.Department = f.Department
			if ident.DisplayName == "" {
				ident.DisplayName = f.Name
			}
		}
	}
	return ident, nil
}

// devStrategy accepts any non-empty username/password pair and
// synthesizes an identity, creating the backing profile record on
// first login. No credential verification happens here, by design:
// this is the local development fallback.
type devStrategy struct {
	st  *store.Store
	log *zap.Logger
}

func (s *devStrategy) Login(ctx context.Context, role, username, password string) (models.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.Identity{}, ErrInvalidCredentials
	}

	switch role {
	case models.RoleFaculty:
		return s.facultyIdentity(ctx, username)
	case models.RoleStudent:
		return s.studentIdentity(ctx, username)
	default:
		return models.Identity{}, ErrInvalidCredentials
	}
}

func (s *devStrategy) facultyIdentity(ctx context.Context, username string) (models.Identity, error) {
	all, err := s.st.Faculty.List(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	for _, f := range all {
		if f.FacultyCode == username {
			return models.Identity{ID: f.ID, DisplayName: f.Name, Role: models.RoleFaculty, Department: f.Department}, nil
		}
	}
	f, err := s.st.Faculty.Create(ctx, "", models.Faculty{
		FacultyCode: username,
		Name:        username,
		Department:  "General",
	})
	if err != nil {
		return models.Identity{}, err
	}
	s.log.Info("synthesized faculty identity", zap.String("faculty_code", username))
	return models.Identity{ID: f.ID, DisplayName: f.Name, Role: models.RoleFaculty, Department: f.Department}, nil
}

func (s *devStrategy) studentIdentity(ctx context.Context, username string) (models.Identity, error) {
	all, err := s.st.Students.List(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	for _, st := range all {
		if st.StudentCode == username {
			return models.Identity{
				ID: st.ID, DisplayName: st.Name, Role: models.RoleStudent,
				Department: st.Department, Year: st.Year, Semester: st.Semester, FacultyID: st.OwnerID,
			}, nil
		}
	}

	// Attach the synthesized student to the first faculty on record so
	// faculty-side roster reads can see it; an empty owner is accepted
	// when no faculty exists yet.
	ownerID := ""
	if faculty, err := s.st.Faculty.List(ctx); err == nil && len(faculty) > 0 {
		ownerID = faculty[0].ID
	}
	st, err := s.st.Students.Create(ctx, ownerID, models.Student{
		StudentCode: username,
		Name:        username,
		Department:  "General",
		Year:        1,
		Semester:    1,
	})
	if err != nil {
		return models.Identity{}, err
	}
	s.log.Info("synthesized student identity", zap.String("student_code", username))
	return models.Identity{
		ID: st.ID, DisplayName: st.Name, Role: models.RoleStudent,
		Department: st.Department, Year: st.Year, Semester: st.Semester, FacultyID: st.OwnerID,
	}, nil
}
