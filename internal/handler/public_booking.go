package handler

import (
	"context"  // background context for post-commit event publishing
	"errors"   // for errors.Is comparisons
	"net/http" // HTTP status codes
	"time"     // timestamps on published events

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/availability"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

type createBookingReq struct {
	FirstName       string  `json:"firstName" validate:"required"`
	LastName        string  `json:"lastName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone" validate:"required"`
	RoomName        string  `json:"roomName" validate:"required"`
	CheckIn         string  `json:"checkIn" validate:"required"`
	CheckOut        string  `json:"checkOut" validate:"required"`
	Guests          int     `json:"guests" validate:"required,min=1"`
	SpecialRequests string  `json:"specialRequests"`
	TotalPrice      float64 `json:"totalPrice" validate:"required,gt=0"`
}

// CreateBooking handles POST /api/bookings.  The room lookup, the
// availability check and the insert all run inside one transaction with
// the room row and its blocking bookings locked, so two concurrent
// submissions for the same room serialize: the second waits, then sees the
// first's booking and is rejected.  The new booking always starts as
// pending; an admin confirms it later.
//
// Responses: 400 for validation failures, 404 when the room label is
// unknown, 409 when the requested stay overlaps a blocking booking, 201
// with the created booking on success.
func (h *PublicHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing or invalid booking fields"})
	}
	checkIn, err := parseStayDate(req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkIn date"})
	}
	checkOut, err := parseStayDate(req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid checkOut date"})
	}
	// The availability check assumes an ordered interval; enforce it here.
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "checkOut must be after checkIn"})
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

	room, err := h.Rooms.GetByLabelTx(ctx, tx, req.RoomName)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	stays, err := h.Bookings.BlockingStaysTx(ctx, tx, room.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check availability"})
	}
	if availability.Blocked(availability.Stay{CheckIn: checkIn, CheckOut: checkOut}, stays) {
		return c.JSON(http.StatusConflict, echo.Map{"error": repository.ErrUnavailable.Error()})
	}

	booking := &model.Booking{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		RoomID:          room.ID,
		RoomLabel:       room.Label,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      req.TotalPrice,
		Status:          model.StatusPending,
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	// Publish after commit; a broker outage must not fail the booking.
	ev := queue.BookingCreatedEvent{
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		RoomLabel:  booking.RoomLabel,
		GuestName:  booking.FirstName + " " + booking.LastName,
		Email:      booking.Email,
		CheckIn:    booking.CheckIn.Format(stayDateLayout),
		CheckOut:   booking.CheckOut.Format(stayDateLayout),
		Guests:     booking.Guests,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingCreated(pctx, ev)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}
