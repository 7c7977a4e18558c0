package handler

import (
	"net/http" // HTTP status codes

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/repository" // repository layer
)

// PublicHandler serves the guest-facing endpoints: room browsing,
// availability filtering and reservation submission.  No authentication is
// applied; these are the routes the public site consumes.
type PublicHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
}

// NewPublicHandler constructs a PublicHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewPublicHandler(rooms *repository.RoomRepo, bookings *repository.BookingRepo) *PublicHandler {
	if rooms == nil || bookings == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{Rooms: rooms, Bookings: bookings}
}

// ListRooms handles GET /api/rooms.  It returns every room with image
// filenames expanded to absolute URLs for direct rendering.
func (h *PublicHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]publicRoom, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, toPublicRoom(c, rm))
	}
	return c.JSON(http.StatusOK, out)
}

// AvailableRooms handles GET /api/rooms/available?checkIn&checkOut.  Rooms
// blocked by a confirmed or checked-in booking overlapping the requested
// stay are filtered out.  When either query parameter is missing the full
// room list is returned, matching the behavior the front end expects for
// an empty date picker.
func (h *PublicHandler) AvailableRooms(c echo.Context) error {
	inStr := c.QueryParam("checkIn")
	outStr := c.QueryParam("checkOut")

	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if inStr == "" || outStr == "" {
		out := make([]publicRoom, 0, len(rooms))
		for _, rm := range rooms {
			out = append(out, toPublicRoom(c, rm))
		}
		return c.JSON(http.StatusOK, out)
	}

	checkIn, err := parseStayDate(inStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkIn date"})
	}
	checkOut, err := parseStayDate(outStr)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkOut date"})
	}
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "checkOut must be after checkIn"})
	}

	blocked, err := h.Bookings.BlockedRoomIDs(c.Request().Context(), checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]publicRoom, 0, len(rooms))
	for _, rm := range rooms {
		if blocked[rm.ID] {
			continue
		}
		out = append(out, toPublicRoom(c, rm))
	}
	return c.JSON(http.StatusOK, out)
}
