package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unicampus/portal/models"
)

func TestMenuPerRole(t *testing.T) {
	student := Menu(models.RoleStudent)
	faculty := Menu(models.RoleFaculty)

	assert.NotEmpty(t, student)
	assert.NotEmpty(t, faculty)
	assert.Equal(t, PanelOverview, student[0].ID)
	assert.Equal(t, PanelOverview, faculty[0].ID)

	// roster management is faculty-only
	_, ok := Lookup(models.RoleStudent, PanelStudents)
	assert.False(t, ok)
	_, ok = Lookup(models.RoleFaculty, PanelStudents)
	assert.True(t, ok)
}

func TestMenuUnknownRole(t *testing.T) {
	assert.Empty(t, Menu("admin"))
}

func TestLookupFallsBackToPlaceholder(t *testing.T) {
	p, ok := Lookup(models.RoleStudent, PanelID("library"))
	assert.False(t, ok)
	assert.Equal(t, Unavailable, p)
}

func TestDefaultPanelInEveryMenu(t *testing.T) {
	for _, role := range []string{models.RoleStudent, models.RoleFaculty} {
		_, ok := Lookup(role, Default())
		assert.True(t, ok)
	}
}
