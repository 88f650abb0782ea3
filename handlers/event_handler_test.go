package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

func TestEventCapacityRejectsWhenFull(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewEventHandler(st)

	fac, roster := seedFacultyRoster(t, st)

	rec := call(t, e, h.Create, http.MethodPost, "/faculty/events",
		`{"title":"Robotics Workshop","date":"2026-09-10","max_participants":2}`, &fac)
	require.Equal(t, http.StatusCreated, rec.Code)
	var ev models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))

	for _, s := range roster[:2] {
		ident := studentIdentity(s)
		rec := call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	third := studentIdentity(roster[2])
	rec = call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &third, "id", ev.ID)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EVENT_FULL", decode(t, rec)["error"])

	regs, err := st.EventRegistrations.ListByOwner(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Len(t, regs, 2)
}

func TestEventRegisterTwiceConflicts(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewEventHandler(st)

	fac, roster := seedFacultyRoster(t, st)
	ev, err := st.Events.Create(context.Background(), fac.ID, models.Event{Title: "Seminar", Date: "2026-09-12"})
	require.NoError(t, err)

	ident := studentIdentity(roster[0])
	rec := call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_REGISTERED", decode(t, rec)["error"])
}

func TestEventRegisterOutsideScopeNotFound(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewEventHandler(st)

	_, roster := seedFacultyRoster(t, st)
	// event owned by a different faculty is invisible to this roster
	ev, err := st.Events.Create(context.Background(), "other-faculty", models.Event{Title: "Private", Date: "2026-09-12"})
	require.NoError(t, err)

	ident := studentIdentity(roster[0])
	rec := call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMyEventsReportsRegistrationState(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewEventHandler(st)

	fac, roster := seedFacultyRoster(t, st)
	ev, err := st.Events.Create(context.Background(), fac.ID, models.Event{Title: "Tech Fest", Date: "2026-10-01", MaxParticipants: 1})
	require.NoError(t, err)

	ident := studentIdentity(roster[0])
	rec := call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, e, h.MyEvents, http.MethodGet, "/student/events", "", &ident)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []struct {
		models.Event
		Registrations int  `json:"registrations"`
		Registered    bool `json:"registered"`
		Full          bool `json:"full"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Registrations)
	assert.True(t, rows[0].Registered)
	assert.True(t, rows[0].Full)
}

func TestEventDeleteRemovesRegistrations(t *testing.T) {
	e := newEcho()
	st := store.NewMemory()
	h := NewEventHandler(st)

	fac, roster := seedFacultyRoster(t, st)
	ev, err := st.Events.Create(context.Background(), fac.ID, models.Event{Title: "Cancelled", Date: "2026-11-01"})
	require.NoError(t, err)

	ident := studentIdentity(roster[0])
	rec := call(t, e, h.Register, http.MethodPost, "/student/events/"+ev.ID+"/register", "", &ident, "id", ev.ID)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(t, e, h.Delete, http.MethodDelete, "/faculty/events/"+ev.ID, "", &fac, "id", ev.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	regs, err := st.EventRegistrations.ListByOwner(context.Background(), ev.ID)
	require.NoError(t, err)
	assert.Empty(t, regs)
}
