package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/notify"
	"github.com/unicampus/portal/stats"
	"github.com/unicampus/portal/store"
)

type NotificationHandler struct {
	st       *store.Store
	notifier *notify.Notifier
}

func NewNotificationHandler(st *store.Store, notifier *notify.Notifier) *NotificationHandler {
	return &NotificationHandler{st: st, notifier: notifier}
}

// GET /student/notifications?unread=true
func (h *NotificationHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	rows, err := h.st.Notifications.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	unread := stats.UnreadCount(rows)
	if c.QueryParam("unread") == "true" {
		filtered := make([]models.Notification, 0, len(rows))
		for _, n := range rows {
			if !n.Read {
				filtered = append(filtered, n)
			}
		}
		rows = filtered
	}
	return c.JSON(http.StatusOK, map[string]any{
		"rows":   rows,
		"unread": unread,
	})
}

// POST /student/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	n, err := h.st.Notifications.Get(ctx(c), c.Param("id"))
	if err != nil || n.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	n.Read = true
	updated, err := h.st.Notifications.Update(ctx(c), n)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// POST /student/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	rows, err := h.st.Notifications.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	marked := 0
	for _, n := range rows {
		if n.Read {
			continue
		}
		n.Read = true
		if _, err := h.st.Notifications.Update(ctx(c), n); err == nil {
			marked++
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"marked": marked})
}

// DELETE /student/notifications/:id
func (h *NotificationHandler) Delete(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	n, err := h.st.Notifications.Get(ctx(c), c.Param("id"))
	if err != nil || n.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if _, err := h.st.Notifications.Delete(ctx(c), n.ID); err != nil {
		return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// POST /faculty/notifications — the fan-out. Zero matched recipients
// is reported, not treated as an error.
func (h *NotificationHandler) Compose(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		notify.Input
		Target notify.Target `json:"target"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req.Input); err != nil {
		return err
	}
	if req.Target.Kind == "" {
		req.Target = notify.All()
	}

	res, err := h.notifier.Send(ctx(c), ident.ID, req.Input, req.Target)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FANOUT_FAILED")
	}
	return c.JSON(http.StatusOK, res)
}
