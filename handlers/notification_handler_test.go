package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/notify"
	"github.com/unicampus/portal/store"
)

func TestComposeFansOutToDepartment(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewNotificationHandler(st, notify.NewNotifier(st, zap.NewNop()))

	fac, roster := seedFacultyRoster(t, st)

	body := `{"title":"Lab moved","message":"Lab 2 today","type":"info","target":{"kind":"department","department":"CS"}}`
	rec := call(t, e, h.Compose, http.MethodPost, "/faculty/notifications", body, &fac)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode(t, rec)
	assert.Equal(t, 2.0, out["recipients"])
	assert.Equal(t, 2.0, out["created"])

	// the EC student got nothing
	got, err := st.Notifications.ListByOwner(context.Background(), roster[2].ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComposeDefaultsToAll(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewNotificationHandler(st, notify.NewNotifier(st, zap.NewNop()))

	fac, _ := seedFacultyRoster(t, st)

	body := `{"title":"Holiday","message":"Campus closed","type":"success"}`
	rec := call(t, e, h.Compose, http.MethodPost, "/faculty/notifications", body, &fac)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.0, decode(t, rec)["created"])
}

func TestNotificationListAndMarkRead(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewNotificationHandler(st, notify.NewNotifier(st, zap.NewNop()))

	_, roster := seedFacultyRoster(t, st)
	ctxb := context.Background()
	target := roster[0]

	first, err := st.Notifications.Create(ctxb, target.ID, models.Notification{Title: "a", Type: models.NotifyInfo})
	require.NoError(t, err)
	_, err = st.Notifications.Create(ctxb, target.ID, models.Notification{Title: "b", Type: models.NotifyInfo})
	require.NoError(t, err)

	ident := studentIdentity(target)
	rec := call(t, e, h.MarkRead, http.MethodPost, "/student/notifications/"+first.ID+"/read", "", &ident, "id", first.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, e, h.List, http.MethodGet, "/student/notifications?unread=true", "", &ident)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, 1.0, out["unread"])
	assert.Len(t, out["rows"].([]any), 1)
}

func TestMarkReadOnOthersNotificationNotFound(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewNotificationHandler(st, notify.NewNotifier(st, zap.NewNop()))

	_, roster := seedFacultyRoster(t, st)
	n, err := st.Notifications.Create(context.Background(), roster[0].ID, models.Notification{Title: "a", Type: models.NotifyInfo})
	require.NoError(t, err)

	other := studentIdentity(roster[1])
	rec := call(t, e, h.MarkRead, http.MethodPost, "/student/notifications/"+n.ID+"/read", "", &other, "id", n.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkAllRead(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewNotificationHandler(st, notify.NewNotifier(st, zap.NewNop()))

	_, roster := seedFacultyRoster(t, st)
	ctxb := context.Background()
	target := roster[0]
	for _, title := range []string{"a", "b", "c"} {
		_, err := st.Notifications.Create(ctxb, target.ID, models.Notification{Title: title, Type: models.NotifyInfo})
		require.NoError(t, err)
	}

	ident := studentIdentity(target)
	rec := call(t, e, h.MarkAllRead, http.MethodPost, "/student/notifications/read-all", "", &ident)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.0, decode(t, rec)["marked"])

	// second pass has nothing left to mark
	rec = call(t, e, h.MarkAllRead, http.MethodPost, "/student/notifications/read-all", "", &ident)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, decode(t, rec)["marked"])
}
