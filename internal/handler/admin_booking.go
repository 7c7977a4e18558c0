package handler

import (
	"context"  // background context for post-commit event publishing
	"errors"   // for errors.Is comparisons
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters
	"time"     // timestamps on published events

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

// AdminBookingHandler serves the dashboard's view of reservations: the
// full history listing and status transitions.  Status transitions are the
// only writes bookings ever receive after creation.
type AdminBookingHandler struct {
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
}

// NewAdminBookingHandler constructs an AdminBookingHandler.  Both
// repositories must be non-nil.
func NewAdminBookingHandler(bookings *repository.BookingRepo, rooms *repository.RoomRepo) *AdminBookingHandler {
	if bookings == nil || rooms == nil {
		panic("nil repository passed to NewAdminBookingHandler")
	}
	return &AdminBookingHandler{Bookings: bookings, Rooms: rooms}
}

// List handles GET /api/admin/bookings, newest first.
func (h *AdminBookingHandler) List(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/bookings/:id.  The status write
// and the room occupancy update run in one transaction.  Occupancy is
// derived from the room's full booking set rather than forced per
// transition: a room with two overlapping checked-in bookings stays
// occupied when only one of them checks out.  A booking whose room has
// since been deleted still transitions; the occupancy update then simply
// touches no row.
//
// Lock order matches the booking creation flow: the room row first, then
// the room's booking rows.  The booking's room is resolved with an
// unlocked read up front to make that possible.
//
// Responses: 400 for an unknown status value, 404 when the booking does
// not exist (nothing is written in that case), 200 with the updated
// booking on success.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := model.BookingStatus(req.Status)
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown booking status"})
	}

	ctx := c.Request().Context()
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	roomID, err := h.Bookings.RoomIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}
	if err := h.Rooms.LockTx(ctx, tx, roomID); err != nil && !errors.Is(err, repository.ErrRoomNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}

	booking, oldStatus, err := h.Bookings.UpdateStatusTx(ctx, tx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update booking"})
	}

	occupied, err := h.Bookings.RoomOccupiedTx(ctx, tx, booking.RoomID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to derive occupancy"})
	}
	if err := h.Rooms.SetOccupiedTx(ctx, tx, booking.RoomID, occupied); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update room occupancy"})
	}

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	ev := queue.BookingStatusChangedEvent{
		BookingID:    booking.ID,
		RoomID:       booking.RoomID,
		RoomLabel:    booking.RoomLabel,
		OldStatus:    string(oldStatus),
		NewStatus:    string(booking.Status),
		RoomOccupied: occupied,
		ChangedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingStatusChanged(pctx, ev)
	}()

	return c.JSON(http.StatusOK, booking)
}
