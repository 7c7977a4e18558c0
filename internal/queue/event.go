// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a guest submits a reservation.
// It contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64  `json:"booking_id"`
	RoomID     uint64  `json:"room_id"`
	RoomLabel  string  `json:"room_label"`
	GuestName  string  `json:"guest_name"`
	Email      string  `json:"email"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

// BookingStatusChangedEvent is published when an admin moves a booking to
// a new lifecycle state.  RoomOccupied carries the occupancy flag derived
// during the transition so consumers see the same value the room row holds.
type BookingStatusChangedEvent struct {
	BookingID    uint64 `json:"booking_id"`
	RoomID       uint64 `json:"room_id"`
	RoomLabel    string `json:"room_label"`
	OldStatus    string `json:"old_status"`
	NewStatus    string `json:"new_status"`
	RoomOccupied bool   `json:"room_occupied"`
	ChangedAt    string `json:"changed_at"`
}
