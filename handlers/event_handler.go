package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type EventHandler struct {
	st *store.Store
}

func NewEventHandler(st *store.Store) *EventHandler {
	return &EventHandler{st: st}
}

// GET /student/events — the student's faculty's events, with the
// registration count and whether this student is registered.
func (h *EventHandler) MyEvents(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	events, err := h.st.Events.ListByOwner(ctx(c), me.OwnerID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}

	type row struct {
		models.Event
		Registrations int  `json:"registrations"`
		Registered    bool `json:"registered"`
		Full          bool `json:"full"`
	}
	out := make([]row, 0, len(events))
	for _, ev := range events {
		regs, err := h.st.EventRegistrations.ListByOwner(ctx(c), ev.ID)
		if err != nil {
			return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
		}
		r := row{Event: ev, Registrations: len(regs)}
		for _, reg := range regs {
			if reg.StudentID == ident.ID {
				r.Registered = true
				break
			}
		}
		r.Full = ev.MaxParticipants > 0 && len(regs) >= ev.MaxParticipants
		out = append(out, r)
	}
	return c.JSON(http.StatusOK, out)
}

// POST /student/events/:id/register
// Capacity policy: a full event rejects further registrations.
func (h *EventHandler) Register(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	ev, err := h.st.Events.Get(ctx(c), c.Param("id"))
	if err != nil || ev.OwnerID != me.OwnerID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	regs, err := h.st.EventRegistrations.ListByOwner(ctx(c), ev.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	for _, reg := range regs {
		if reg.StudentID == ident.ID {
			return errJSON(c, http.StatusConflict, "ALREADY_REGISTERED")
		}
	}
	if ev.MaxParticipants > 0 && len(regs) >= ev.MaxParticipants {
		return errJSON(c, http.StatusConflict, "EVENT_FULL")
	}

	reg, err := h.st.EventRegistrations.Create(ctx(c), ev.ID, models.EventRegistration{
		StudentID:   ident.ID,
		StudentName: me.Name,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, reg)
}

// DELETE /student/events/:id/register
func (h *EventHandler) CancelRegistration(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	regs, err := h.st.EventRegistrations.ListByOwner(ctx(c), c.Param("id"))
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	for _, reg := range regs {
		if reg.StudentID == ident.ID {
			if _, err := h.st.EventRegistrations.Delete(ctx(c), reg.ID); err != nil {
				return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
			}
			return c.JSON(http.StatusOK, map[string]any{"ok": true})
		}
	}
	return errJSON(c, http.StatusNotFound, "NOT_FOUND")
}

// GET /faculty/events
func (h *EventHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	rows, err := h.st.Events.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

type eventReq struct {
	Title           string `json:"title" validate:"required"`
	Date            string `json:"date" validate:"required"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants" validate:"gte=0"`
	EventType       string `json:"event_type"`
	Description     string `json:"description"`
}

// POST /faculty/events
func (h *EventHandler) Create(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req eventReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ev, err := h.st.Events.Create(ctx(c), ident.ID, models.Event{
		Title:           req.Title,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		EventType:       req.EventType,
		Description:     req.Description,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, ev)
}

// PUT /faculty/events/:id
func (h *EventHandler) Update(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	ev, err := h.st.Events.Get(ctx(c), c.Param("id"))
	if err != nil || ev.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	var req eventReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ev.Title = req.Title
	ev.Date = req.Date
	ev.StartTime = req.StartTime
	ev.EndTime = req.EndTime
	ev.Location = req.Location
	ev.MaxParticipants = req.MaxParticipants
	ev.EventType = req.EventType
	ev.Description = req.Description

	updated, err := h.st.Events.Update(ctx(c), ev)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// DELETE /faculty/events/:id — registrations are removed with the
// event; there is no cascade in the store itself.
func (h *EventHandler) Delete(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	ev, err := h.st.Events.Get(ctx(c), c.Param("id"))
	if err != nil || ev.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	regs, err := h.st.EventRegistrations.ListByOwner(ctx(c), ev.ID)
	if err == nil {
		for _, reg := range regs {
			_, _ = h.st.EventRegistrations.Delete(ctx(c), reg.ID)
		}
	}
	if _, err := h.st.Events.Delete(ctx(c), ev.ID); err != nil {
		return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /faculty/events/:id/registrations
func (h *EventHandler) Registrations(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	ev, err := h.st.Events.Get(ctx(c), c.Param("id"))
	if err != nil || ev.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	regs, err := h.st.EventRegistrations.ListByOwner(ctx(c), ev.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, regs)
}
