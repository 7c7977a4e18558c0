package handler

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// The transition flow runs against a mocked *sql.DB so the exact sequence
// of statements — and the absence of writes on the error paths — can be
// asserted without a MySQL instance.

func newStatusTestEnv(t *testing.T) (*AdminBookingHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	h := NewAdminBookingHandler(repository.NewBookingRepo(db), repository.NewRoomRepo(db))
	return h, mock, func() { _ = db.Close() }
}

func patchStatus(t *testing.T, h *AdminBookingHandler, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/bookings/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/admin/bookings/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	return rec
}

func bookingRows(id, roomID uint64, status string) *sqlmock.Rows {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "phone", "room_id", "room_label",
		"check_in", "check_out", "guests", "special_requests", "total_price",
		"status", "created_at", "updated_at",
	}).AddRow(id, "Amina", "El Idrissi", "amina@example.com", "+212600000000",
		roomID, "Masmouda",
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		2, "", 120.0, status, now, now)
}

// expectTransition scripts the full statement sequence of a successful
// status change: room resolved, room row locked, booking locked and
// updated, statuses folded, occupancy written, commit.  otherStatuses are
// the room's remaining bookings alongside the transitioned one.
func expectTransition(mock sqlmock.Sqlmock, id, roomID uint64, oldStatus, newStatus string, otherStatuses []string, wantOccupied bool) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT room_id FROM bookings").WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(roomID))
	mock.ExpectQuery("SELECT id FROM rooms").WithArgs(roomID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(roomID))
	mock.ExpectQuery("FROM bookings WHERE id = .+ FOR UPDATE").WithArgs(id).
		WillReturnRows(bookingRows(id, roomID, oldStatus))
	mock.ExpectExec("UPDATE bookings SET status").WithArgs(newStatus, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM bookings WHERE id = .+ FOR UPDATE").WithArgs(id).
		WillReturnRows(bookingRows(id, roomID, newStatus))
	statusRows := sqlmock.NewRows([]string{"status"}).AddRow(newStatus)
	for _, s := range otherStatuses {
		statusRows.AddRow(s)
	}
	mock.ExpectQuery("SELECT status FROM bookings WHERE room_id").WithArgs(roomID).
		WillReturnRows(statusRows)
	mock.ExpectExec("UPDATE rooms SET is_occupied").WithArgs(wantOccupied, roomID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestUpdateStatusUnknownBookingWritesNothing(t *testing.T) {
	h, mock, done := newStatusTestEnv(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT room_id FROM bookings").WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec := patchStatus(t, h, "99", `{"status":"confirmed"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestUpdateStatusUnknownValueRejected(t *testing.T) {
	h, mock, done := newStatusTestEnv(t)
	defer done()

	rec := patchStatus(t, h, "7", `{"status":"archived"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestUpdateStatusCheckInOccupiesRoom(t *testing.T) {
	h, mock, done := newStatusTestEnv(t)
	defer done()

	expectTransition(mock, 7, 3, "confirmed", "checked-in", nil, true)

	rec := patchStatus(t, h, "7", `{"status":"checked-in"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"status":"checked-in"`) {
		t.Errorf("body = %s, want the updated booking with status checked-in", rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transition sequence not honored: %v", err)
	}
}

func TestUpdateStatusLastGuestLeavingFreesRoom(t *testing.T) {
	h, mock, done := newStatusTestEnv(t)
	defer done()

	expectTransition(mock, 7, 3, "checked-in", "checked-out", nil, false)

	rec := patchStatus(t, h, "7", `{"status":"checked-out"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transition sequence not honored: %v", err)
	}
}

func TestUpdateStatusKeepsRoomOccupiedWhileOtherGuestRemains(t *testing.T) {
	h, mock, done := newStatusTestEnv(t)
	defer done()

	// A second booking for the same room is still checked in, so the
	// departure must leave the occupancy flag raised.
	expectTransition(mock, 7, 3, "checked-in", "checked-out", []string{"checked-in"}, true)

	rec := patchStatus(t, h, "7", `{"status":"checked-out"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("transition sequence not honored: %v", err)
	}
}
