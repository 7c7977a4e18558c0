package availability

import (
	"testing"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(from, to time.Time) Stay { return Stay{CheckIn: from, CheckOut: to} }

// The resident booking used throughout: a stay over [2024-06-01, 2024-06-05).
var existing = stay(date(2024, 6, 1), date(2024, 6, 5))

func TestOverlapsNestedStart(t *testing.T) {
	requested := stay(date(2024, 6, 3), date(2024, 6, 4))
	if !Overlaps(requested, existing) {
		t.Errorf("Overlaps(%v, %v) = false, want true", requested, existing)
	}
}

// A requested stay that strictly contains the existing one must be
// detected.  The service this replaces used a pair of one-sided boundary
// conditions and missed this case; the symmetric half-open test closes it.
func TestOverlapsContainment(t *testing.T) {
	requested := stay(date(2024, 5, 30), date(2024, 6, 10))
	if !Overlaps(requested, existing) {
		t.Errorf("Overlaps(%v, %v) = false, want true", requested, existing)
	}
}

func TestOverlapsSameDayTurnover(t *testing.T) {
	// Arriving on the existing stay's checkout day is allowed.
	requested := stay(date(2024, 6, 5), date(2024, 6, 10))
	if Overlaps(requested, existing) {
		t.Errorf("Overlaps(%v, %v) = true, want false", requested, existing)
	}
	// Symmetrically, leaving on the existing stay's check-in day is allowed.
	requested = stay(date(2024, 5, 28), date(2024, 6, 1))
	if Overlaps(requested, existing) {
		t.Errorf("Overlaps(%v, %v) = true, want false", requested, existing)
	}
}

func TestOverlapsIdentical(t *testing.T) {
	if !Overlaps(existing, existing) {
		t.Errorf("Overlaps(x, x) = false, want true")
	}
}

func TestBlockedDisjointStays(t *testing.T) {
	others := []Stay{
		stay(date(2024, 6, 1), date(2024, 6, 5)),
		stay(date(2024, 6, 10), date(2024, 6, 12)),
	}
	requested := stay(date(2024, 6, 5), date(2024, 6, 10))
	if Blocked(requested, others) {
		t.Errorf("Blocked(%v, disjoint stays) = true, want false", requested)
	}
}

func TestBlockedAnyOverlapWins(t *testing.T) {
	others := []Stay{
		stay(date(2024, 6, 10), date(2024, 6, 12)),
		stay(date(2024, 6, 1), date(2024, 6, 5)),
	}
	requested := stay(date(2024, 6, 4), date(2024, 6, 6))
	if !Blocked(requested, others) {
		t.Errorf("Blocked(%v, %v) = false, want true", requested, others)
	}
}

func TestBlockedEmpty(t *testing.T) {
	requested := stay(date(2024, 6, 1), date(2024, 6, 5))
	if Blocked(requested, nil) {
		t.Errorf("Blocked(%v, nil) = true, want false", requested)
	}
}

func TestBlockingStatuses(t *testing.T) {
	got := BlockingStatuses()
	want := map[model.BookingStatus]bool{
		model.StatusConfirmed: true,
		model.StatusCheckedIn: true,
	}
	if len(got) != len(want) {
		t.Fatalf("BlockingStatuses() = %v, want exactly %d statuses", got, len(want))
	}
	for _, s := range got {
		if !want[s] {
			t.Errorf("BlockingStatuses() contains %q, which must never block", s)
		}
	}
}

func TestOccupied(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.BookingStatus
		want     bool
	}{
		{"no bookings", nil, false},
		{"checked-in raises the flag", []model.BookingStatus{model.StatusCheckedIn}, true},
		{"one of two still checked in", []model.BookingStatus{model.StatusCheckedOut, model.StatusCheckedIn}, true},
		{"all departed", []model.BookingStatus{model.StatusCheckedOut, model.StatusCheckedOut}, false},
		{"confirmed alone does not occupy", []model.BookingStatus{model.StatusConfirmed, model.StatusPending}, false},
		{"cancelled does not occupy", []model.BookingStatus{model.StatusCancelled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Occupied(tt.statuses); got != tt.want {
				t.Errorf("Occupied(%v) = %v, want %v", tt.statuses, got, tt.want)
			}
		})
	}
}
