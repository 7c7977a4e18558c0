package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.  The set is
// flat: an admin may move a booking from any state to any other, and no
// transition graph is enforced.  What a state does control is whether the
// booking blocks availability (Blocks) and whether it keeps the room's
// occupancy flag raised (OccupiesRoom).
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked-out"
	StatusCancelled  BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known lifecycle states.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether a booking in this state makes its room unavailable
// for overlapping date ranges.  Only confirmed and checked-in bookings
// block; pending requests and finished or cancelled stays never do.
func (s BookingStatus) Blocks() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// OccupiesRoom reports whether a booking in this state keeps the room's
// occupancy flag raised.  Occupancy is derived from the full set of a
// room's bookings rather than toggled per transition, so two overlapping
// checked-in bookings keep the room occupied until both have left.
func (s BookingStatus) OccupiesRoom() bool {
	return s == StatusCheckedIn
}

// Booking records a guest's reservation of a room for a date range as
// stored in the `bookings` table.  RoomLabel is denormalized from the room
// at creation time and survives a later room deletion; RoomID may then
// dangle, which is accepted.  Bookings are never deleted and serve as
// history.
//
// Fields:
//
//	ID              – primary key identifier.
//	FirstName       – guest first name.
//	LastName        – guest last name.
//	Email           – guest contact email.
//	Phone           – guest contact phone.
//	RoomID          – reference to the booked room.
//	RoomLabel       – room label captured at creation time.
//	CheckIn         – first night of the stay (inclusive).
//	CheckOut        – departure date (exclusive; same-day turnover allowed).
//	Guests          – number of guests.
//	SpecialRequests – optional free-text requests.
//	TotalPrice      – total price quoted at creation.
//	Status          – lifecycle state.
//	CreatedAt       – creation timestamp.
//	UpdatedAt       – last update timestamp.
type Booking struct {
	ID              uint64        `json:"id"`              // bookings.id
	FirstName       string        `json:"firstName"`       // bookings.first_name
	LastName        string        `json:"lastName"`        // bookings.last_name
	Email           string        `json:"email"`           // bookings.email
	Phone           string        `json:"phone"`           // bookings.phone
	RoomID          uint64        `json:"roomId"`          // bookings.room_id
	RoomLabel       string        `json:"roomName"`        // bookings.room_label
	CheckIn         time.Time     `json:"checkIn"`         // bookings.check_in (DATE)
	CheckOut        time.Time     `json:"checkOut"`        // bookings.check_out (DATE)
	Guests          int           `json:"guests"`          // bookings.guests
	SpecialRequests string        `json:"specialRequests"` // bookings.special_requests
	TotalPrice      float64       `json:"totalPrice"`      // bookings.total_price
	Status          BookingStatus `json:"status"`          // bookings.status
	CreatedAt       time.Time     `json:"createdAt"`       // bookings.created_at
	UpdatedAt       time.Time     `json:"updatedAt"`       // bookings.updated_at
}
