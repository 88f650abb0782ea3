package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type MessageHandler struct {
	st *store.Store
}

func NewMessageHandler(st *store.Store) *MessageHandler {
	return &MessageHandler{st: st}
}

// GET /student/messages and /faculty/messages — the caller's inbox.
func (h *MessageHandler) Inbox(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	rows, err := h.st.Messages.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /student/messages and /faculty/messages
func (h *MessageHandler) Send(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		RecipientID string `json:"recipient_id" validate:"required"`
		Body        string `json:"body" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.st.Messages.Create(ctx(c), req.RecipientID, models.Message{
		SenderID:   ident.ID,
		SenderName: ident.DisplayName,
		Body:       strings.TrimSpace(req.Body),
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, msg)
}

// POST /student/messages/:id/read and /faculty/messages/:id/read
func (h *MessageHandler) MarkRead(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	msg, err := h.st.Messages.Get(ctx(c), c.Param("id"))
	if err != nil || msg.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	msg.Read = true
	updated, err := h.st.Messages.Update(ctx(c), msg)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}
