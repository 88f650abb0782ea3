package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/portal/models"
	"github.com/unicampus/portal/store"
)

type TransportHandler struct {
	st *store.Store
}

func NewTransportHandler(st *store.Store) *TransportHandler {
	return &TransportHandler{st: st}
}

// GET /student/transport/routes
func (h *TransportHandler) Routes(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	routes, err := h.st.TransportRoutes.ListByOwner(ctx(c), me.OwnerID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, routes)
}

// GET /student/transport/bookings
func (h *TransportHandler) MyBookings(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	bookings, err := h.st.TransportBookings.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, bookings)
}

// POST /student/transport/routes/:id/book
func (h *TransportHandler) Book(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req struct {
		Date string `json:"date"`
	}
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	me, err := h.st.Students.Get(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	route, err := h.st.TransportRoutes.Get(ctx(c), c.Param("id"))
	if err != nil || route.OwnerID != me.OwnerID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	mine, err := h.st.TransportBookings.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	for _, b := range mine {
		if b.RouteID == route.ID && b.Status == models.BookingActive {
			return errJSON(c, http.StatusConflict, "ALREADY_BOOKED")
		}
	}

	if route.Capacity > 0 {
		ids, err := h.st.RosterIDs(ctx(c), me.OwnerID)
		if err != nil {
			return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
		}
		all, err := h.st.TransportBookings.ListByOwners(ctx(c), ids)
		if err != nil {
			return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
		}
		active := 0
		for _, b := range all {
			if b.RouteID == route.ID && b.Status == models.BookingActive {
				active++
			}
		}
		if active >= route.Capacity {
			return errJSON(c, http.StatusConflict, "ROUTE_FULL")
		}
	}

	booking, err := h.st.TransportBookings.Create(ctx(c), ident.ID, models.TransportBooking{
		RouteID: route.ID,
		Date:    req.Date,
		Status:  models.BookingActive,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, booking)
}

// POST /student/transport/bookings/:id/cancel
func (h *TransportHandler) CancelBooking(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	booking, err := h.st.TransportBookings.Get(ctx(c), c.Param("id"))
	if err != nil || booking.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if booking.Status == models.BookingCancelled {
		return errJSON(c, http.StatusConflict, "ALREADY_CANCELLED")
	}
	booking.Status = models.BookingCancelled
	updated, err := h.st.TransportBookings.Update(ctx(c), booking)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// GET /faculty/transport/routes
func (h *TransportHandler) List(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}
	routes, err := h.st.TransportRoutes.ListByOwner(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	return c.JSON(http.StatusOK, routes)
}

type routeReq struct {
	RouteName  string  `json:"route_name" validate:"required"`
	StartPoint string  `json:"start_point"`
	EndPoint   string  `json:"end_point"`
	DepartTime string  `json:"depart_time"`
	Fare       float64 `json:"fare" validate:"gte=0"`
	Capacity   int     `json:"capacity" validate:"gte=0"`
	DriverName string  `json:"driver_name"`
	VehicleNo  string  `json:"vehicle_no"`
}

// POST /faculty/transport/routes
func (h *TransportHandler) Create(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	var req routeReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	route, err := h.st.TransportRoutes.Create(ctx(c), ident.ID, models.TransportRoute{
		RouteName:  req.RouteName,
		StartPoint: req.StartPoint,
		EndPoint:   req.EndPoint,
		DepartTime: req.DepartTime,
		Fare:       req.Fare,
		Capacity:   req.Capacity,
		DriverName: req.DriverName,
		VehicleNo:  req.VehicleNo,
	})
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "CREATE_FAILED")
	}
	return c.JSON(http.StatusCreated, route)
}

// PUT /faculty/transport/routes/:id
func (h *TransportHandler) Update(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	route, err := h.st.TransportRoutes.Get(ctx(c), c.Param("id"))
	if err != nil || route.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}

	var req routeReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "INVALID_PAYLOAD")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	route.RouteName = req.RouteName
	route.StartPoint = req.StartPoint
	route.EndPoint = req.EndPoint
	route.DepartTime = req.DepartTime
	route.Fare = req.Fare
	route.Capacity = req.Capacity
	route.DriverName = req.DriverName
	route.VehicleNo = req.VehicleNo

	updated, err := h.st.TransportRoutes.Update(ctx(c), route)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return errJSON(c, http.StatusNotFound, "NOT_FOUND")
		}
		return errJSON(c, http.StatusBadRequest, "UPDATE_FAILED")
	}
	return c.JSON(http.StatusOK, updated)
}

// DELETE /faculty/transport/routes/:id
func (h *TransportHandler) Delete(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	route, err := h.st.TransportRoutes.Get(ctx(c), c.Param("id"))
	if err != nil || route.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	if _, err := h.st.TransportRoutes.Delete(ctx(c), route.ID); err != nil {
		return errJSON(c, http.StatusBadRequest, "DELETE_FAILED")
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}

// GET /faculty/transport/routes/:id/bookings
func (h *TransportHandler) Bookings(c echo.Context) error {
	ident, ok := actor(c)
	if !ok {
		return errJSON(c, http.StatusUnauthorized, "NO_IDENTITY")
	}

	route, err := h.st.TransportRoutes.Get(ctx(c), c.Param("id"))
	if err != nil || route.OwnerID != ident.ID {
		return errJSON(c, http.StatusNotFound, "NOT_FOUND")
	}
	ids, err := h.st.RosterIDs(ctx(c), ident.ID)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	all, err := h.st.TransportBookings.ListByOwners(ctx(c), ids)
	if err != nil {
		return errJSON(c, http.StatusBadRequest, "FETCH_FAILED")
	}
	out := make([]models.TransportBooking, 0, len(all))
	for _, b := range all {
		if b.RouteID == route.ID {
			out = append(out, b)
		}
	}
	return c.JSON(http.StatusOK, out)
}
