package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

func seedRoster(t *testing.T, st *store.Store, facultyID string) {
	t.Helper()
	roster := []models.Student{
		{StudentCode: "CS01", Name: "A", Department: "CS", Year: 2, Semester: 3},
		{StudentCode: "CS02", Name: "B", Department: "CS", Year: 1, Semester: 1},
		{StudentCode: "EC01", Name: "C", Department: "EC", Year: 2, Semester: 3},
	}
	for _, s := range roster {
		_, err := st.Students.Create(context.Background(), facultyID, s)
		require.NoError(t, err)
	}
	// a student under another faculty must never be reached
	_, err := st.Students.Create(context.Background(), "other-faculty", models.Student{
		StudentCode: "CS99", Name: "Z", Department: "CS", Year: 2, Semester: 3,
	})
	require.NoError(t, err)
}

func TestFanOutByDepartment(t *testing.T) {
	st := store.NewMemory()
	seedRoster(t, st, "fac-1")
	n := NewNotifier(st, zap.NewNop())

	res, err := n.Send(context.Background(), "fac-1", Input{
		Title: "Lab moved", Message: "Lab 2 today", Type: models.NotifyInfo,
	}, Department("CS"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Recipients)
	assert.Equal(t, 2, res.Created)

	// each recipient got exactly one unread notification
	students, err := st.Students.ListByOwner(context.Background(), "fac-1")
	require.NoError(t, err)
	for _, s := range students {
		got, err := st.Notifications.ListByOwner(context.Background(), s.ID)
		require.NoError(t, err)
		if s.Department == "CS" {
			require.Len(t, got, 1)
			assert.False(t, got[0].Read)
			assert.Equal(t, "Lab moved", got[0].Title)
		} else {
			assert.Empty(t, got)
		}
	}
}

func TestFanOutAll(t *testing.T) {
	st := store.NewMemory()
	seedRoster(t, st, "fac-1")
	n := NewNotifier(st, zap.NewNop())

	res, err := n.Send(context.Background(), "fac-1", Input{
		Title: "Holiday", Message: "Campus closed Friday", Type: models.NotifySuccess,
	}, All())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Recipients)
	assert.Equal(t, 3, res.Created)
}

func TestFanOutByYearAndSemester(t *testing.T) {
	st := store.NewMemory()
	seedRoster(t, st, "fac-1")
	n := NewNotifier(st, zap.NewNop())

	res, err := n.Send(context.Background(), "fac-1", Input{
		Title: "t", Message: "m", Type: models.NotifyWarning,
	}, Year(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	res, err = n.Send(context.Background(), "fac-1", Input{
		Title: "t", Message: "m", Type: models.NotifyWarning,
	}, Semester(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
}

func TestFanOutZeroRecipientsIsNoOp(t *testing.T) {
	st := store.NewMemory()
	seedRoster(t, st, "fac-1")
	n := NewNotifier(st, zap.NewNop())

	res, err := n.Send(context.Background(), "fac-1", Input{
		Title: "t", Message: "m", Type: models.NotifyError,
	}, Department("ME"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Recipients)
	assert.Equal(t, 0, res.Created)
}
