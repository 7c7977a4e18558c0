// Package availability implements the date-interval overlap policy used to
// decide whether a room can be booked.  Stays are half-open intervals
// [CheckIn, CheckOut): the checkout date itself is free, so one guest may
// leave and another arrive on the same day.
package availability

import (
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Stay is a half-open date interval occupied by a booking.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two half-open stays intersect.  Two ranges
// [s1, e1) and [s2, e2) overlap iff s1 < e2 and s2 < e1.  Unlike the pair
// of one-sided conditions this replaces, the symmetric test also catches a
// requested stay that strictly contains an existing one.  Callers must
// ensure CheckOut is after CheckIn; the predicate does not validate
// ordering.
func Overlaps(a, b Stay) bool {
	return a.CheckIn.Before(b.CheckOut) && b.CheckIn.Before(a.CheckOut)
}

// Blocked reports whether the requested stay collides with any existing
// stay.  Callers pass only stays belonging to blocking bookings (see
// model.BookingStatus.Blocks); pending, checked-out and cancelled bookings
// must be filtered out beforehand.
func Blocked(requested Stay, existing []Stay) bool {
	for _, s := range existing {
		if Overlaps(requested, s) {
			return true
		}
	}
	return false
}

// Occupied folds a room's booking states into its occupancy flag: the
// room is occupied while any booking is in a state that occupies it.  The
// status transition flow recomputes this after every change instead of
// toggling the flag per transition, so checking out one of two overlapping
// checked-in bookings leaves the room occupied.
func Occupied(statuses []model.BookingStatus) bool {
	for _, s := range statuses {
		if s.OccupiesRoom() {
			return true
		}
	}
	return false
}

// BlockingStatuses returns the lifecycle states capable of making a room
// unavailable, for use in SQL status-in-set filters.  The result is derived
// from the model so the repository filter can never drift from the policy.
func BlockingStatuses() []model.BookingStatus {
	all := []model.BookingStatus{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCancelled,
	}
	out := make([]model.BookingStatus, 0, 2)
	for _, s := range all {
		if s.Blocks() {
			out = append(out, s)
		}
	}
	return out
}
