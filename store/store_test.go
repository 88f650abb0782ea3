package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/portal/models"
)

func backends(t *testing.T) map[string]*Store {
	t.Helper()
	fileStore, err := NewFile(t.TempDir())
	require.NoError(t, err)
	return map[string]*Store{
		"memory": NewMemory(),
		"file":   fileStore,
	}
}

func TestScopeIsolation(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := st.Fees.Create(ctx, "owner-a", models.Fee{FeeType: "Tuition", Amount: 100, DueDate: "2026-01-01", Status: models.FeePending})
			require.NoError(t, err)
			_, err = st.Fees.Create(ctx, "owner-b", models.Fee{FeeType: "Hostel", Amount: 200, DueDate: "2026-01-01", Status: models.FeePending})
			require.NoError(t, err)

			got, err := st.Fees.ListByOwner(ctx, "owner-a")
			require.NoError(t, err)
			require.Len(t, got, 1)
			for _, f := range got {
				assert.Equal(t, "owner-a", f.OwnerID)
			}

			none, err := st.Fees.ListByOwner(ctx, "owner-c")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestCreateThenRead(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := st.Notifications.Create(ctx, "stu-1", models.Notification{
				Title: "Exam", Message: "Hall B", Type: models.NotifyInfo,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.False(t, created.CreatedAt.IsZero())

			got, err := st.Notifications.ListByOwner(ctx, "stu-1")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, created.ID, got[0].ID)
			assert.Equal(t, "Exam", got[0].Title)
		})
	}
}

func TestUpdateNotFound(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			seeded, err := st.Events.Create(ctx, "fac-1", models.Event{Title: "Seminar", Date: "2026-02-10"})
			require.NoError(t, err)

			missing := models.Event{Title: "Ghost"}
			missing.ID = "nonexistent-id"
			_, err = st.Events.Update(ctx, missing)
			assert.ErrorIs(t, err, ErrNotFound)

			// collection unchanged
			got, err := st.Events.ListByOwner(ctx, "fac-1")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, seeded.ID, got[0].ID)
			assert.Equal(t, "Seminar", got[0].Title)
		})
	}
}

func TestGetAndDelete(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			created, err := st.Students.Create(ctx, "fac-1", models.Student{StudentCode: "CS01", Name: "A"})
			require.NoError(t, err)

			got, err := st.Students.Get(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "CS01", got.StudentCode)

			_, err = st.Students.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			removed, err := st.Students.Delete(ctx, created.ID)
			require.NoError(t, err)
			assert.True(t, removed)

			removed, err = st.Students.Delete(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, removed)
		})
	}
}

func TestListByOwners(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for _, owner := range []string{"s1", "s2", "s3"} {
				_, err := st.Attendance.Create(ctx, owner, models.Attendance{
					SubjectCode: "CS201", Date: "2026-01-05", Status: models.AttendancePresent,
				})
				require.NoError(t, err)
			}

			got, err := st.Attendance.ListByOwners(ctx, []string{"s1", "s3"})
			require.NoError(t, err)
			assert.Len(t, got, 2)

			empty, err := st.Attendance.ListByOwners(ctx, nil)
			require.NoError(t, err)
			assert.Empty(t, empty)
		})
	}
}

func TestFileStoreReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFile(dir)
	require.NoError(t, err)
	created, err := first.Fees.Create(ctx, "stu-9", models.Fee{FeeType: "Lab", Amount: 500, DueDate: "2026-03-01", Status: models.FeePending})
	require.NoError(t, err)

	reopened, err := NewFile(dir)
	require.NoError(t, err)
	got, err := reopened.Fees.ListByOwner(ctx, "stu-9")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, created.ID, got[0].ID)
	assert.Equal(t, 500.0, got[0].Amount)
}

func TestFileStoreToleratesGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fees.json"), []byte("{not json"), 0o644))

	st, err := NewFile(dir)
	require.NoError(t, err)
	got, err := st.Fees.ListByOwner(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Empty(t, got)
}
