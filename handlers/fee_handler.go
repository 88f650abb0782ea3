package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/stats"
	"github.com/unicampus/portal/store"
)

type FeeHandler struct {
	st *store.Store
}

func NewFeeHandler(st *store.Store) *FeeHandler {
	return &FeeHandler{st: st}
}

type feeRow struct {
	models.Fee
	EffectiveStatus string `json:"effective_status"`
}

func feeRows(fees []models.Fee, now time.Time) []feeRow {
	out := make([]feeRow, 0, len(fees))
	for _, f := range fees {
		out = append(out, feeRow{Fee: f, EffectiveStatus: f.EffectiveStatus(now)})
	}
	return out
}

// GET /student/fees
func (h *FeeHandler) MyFees(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	fees, err := h.st.Fees.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	now := time.Now()
	return c.JSON(http.StatusOK, map[string]any{
		"rows":          feeRows(fees, now),
		"pending_total": stats.PendingFeesTotal(fees, now),
	})
}

// POST /student/fees/:id/pay
func (h *FeeHandler) Pay(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	fee, err := h.st.Fees.Get(ctx(c), c.Param("id"))
	if err != nil || fee.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if fee.Status == models.FeePaid {
		return errJSON(c, http.StatusConflict, "ALREADY_PAID")
	}

	fee.Status = models.FeePaid
	fee.PaidDate = time.Now().Format("2006-01-02")
	fee.TransactionID = uuid.NewString()

	updated, err := h.st.Fees.Update(ctx(c), fee)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, feeRow{Fee: updated, EffectiveStatus: updated.Status})
}

// GET /faculty/fees?studentId=
func (h *FeeHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	studentID := strings.TrimSpace(c.QueryParam("studentId"))
	var fees []models.Fee
	var err error
	if studentID != "" {
		s, gerr := h.st.Students.Get(ctx(c), studentID)
		if gerr != nil || s.OwnerID != ident.ID {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		fees, err = h.st.Fees.ListByOwner(ctx(c), studentID)
	} else {
		var ids []string
		ids, err = h.st.RosterIDs(ctx(c), ident.ID)
		if err == nil {
			fees, err = h.st.Fees.ListByOwners(ctx(c), ids)
		}
	}
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, feeRows(fees, time.Now()))
}

// POST /faculty/fees
func (h *FeeHandler) Create(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		StudentID string  `json:"student_id" validate:"required"`
		FeeType   string  `json:"fee_type" validate:"required"`
		Amount    float64 `json:"amount" validate:"required,gt=0"`
		DueDate   string  `json:"due_date" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s, err := h.st.Students.Get(ctx(c), req.StudentID)
	if err != nil || s.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	fee, err := h.st.Fees.Create(ctx(c), req.StudentID, models.Fee{
		FeeType: req.FeeType,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		Status:  models.FeePending,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, fee)
}
