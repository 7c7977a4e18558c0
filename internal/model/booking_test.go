package model

import "testing"

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("BookingStatus(%q).Valid() = false, want true", s)
		}
	}
	for _, s := range []BookingStatus{"", "PENDING", "done", "checked_in"} {
		if s.Valid() {
			t.Errorf("BookingStatus(%q).Valid() = true, want false", s)
		}
	}
}

func TestBookingStatusBlocks(t *testing.T) {
	cases := map[BookingStatus]bool{
		StatusPending:    false,
		StatusConfirmed:  true,
		StatusCheckedIn:  true,
		StatusCheckedOut: false,
		StatusCancelled:  false,
	}
	for s, want := range cases {
		if got := s.Blocks(); got != want {
			t.Errorf("BookingStatus(%q).Blocks() = %v, want %v", s, got, want)
		}
	}
}

func TestBookingStatusOccupiesRoom(t *testing.T) {
	cases := map[BookingStatus]bool{
		StatusPending:    false,
		StatusConfirmed:  false,
		StatusCheckedIn:  true,
		StatusCheckedOut: false,
		StatusCancelled:  false,
	}
	for s, want := range cases {
		if got := s.OccupiesRoom(); got != want {
			t.Errorf("BookingStatus(%q).OccupiesRoom() = %v, want %v", s, got, want)
		}
	}
}
