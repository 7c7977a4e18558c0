package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/availability"
	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking lookup fails.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides access to the bookings table.  Bookings are insert
// and update only; nothing ever deletes them, so the table doubles as the
// reservation history.  All date columns are stored as DATE in UTC and the
// driver's parseTime option surfaces them as midnight time.Time values,
// which is what the availability package expects for its half-open
// comparisons.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle for transaction control.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingColumns = `id, first_name, last_name, email, phone, room_id, room_label,
       check_in, check_out, guests, special_requests, total_price, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*model.Booking, error) {
	var b model.Booking
	var requests sql.NullString
	var status string
	if err := row.Scan(&b.ID, &b.FirstName, &b.LastName, &b.Email, &b.Phone,
		&b.RoomID, &b.RoomLabel, &b.CheckIn, &b.CheckOut, &b.Guests,
		&requests, &b.TotalPrice, &status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if requests.Valid {
		b.SpecialRequests = requests.String
	}
	b.Status = model.BookingStatus(status)
	return &b, nil
}

// blockingStatusPlaceholders renders the status-in-set filter for blocking
// bookings, e.g. "status IN (?,?)", along with its arguments.  The set
// comes from the availability package so this filter and the in-memory
// overlap policy always agree on what blocks.
func blockingStatusPlaceholders() (string, []any) {
	statuses := availability.BlockingStatuses()
	marks := make([]string, len(statuses))
	args := make([]any, len(statuses))
	for i, s := range statuses {
		marks[i] = "?"
		args[i] = string(s)
	}
	return "status IN (" + strings.Join(marks, ",") + ")", args
}

// CreateTx inserts a new booking within the scope of an existing
// transaction and reads the row back so defaults (status, timestamps) are
// populated on the provided struct.  The caller must commit or rollback
// the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	const q = `INSERT INTO bookings
               (first_name, last_name, email, phone, room_id, room_label,
                check_in, check_out, guests, special_requests, total_price, status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, b.FirstName, b.LastName, b.Email, b.Phone,
		b.RoomID, b.RoomLabel, b.CheckIn, b.CheckOut, b.Guests,
		b.SpecialRequests, b.TotalPrice, string(b.Status))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`
	got, err := scanBooking(tx.QueryRowContext(ctx, sel, b.ID))
	if err != nil {
		return err
	}
	*b = *got
	return nil
}

// BlockingStaysTx returns the stays of all blocking bookings for a room,
// locking the rows with FOR UPDATE.  Together with the room-row lock taken
// by RoomRepo.GetByLabelTx this closes the check-then-insert race: a second
// submission for the same room waits until the first transaction commits
// and then sees its booking.
func (r *BookingRepo) BlockingStaysTx(ctx context.Context, tx *sql.Tx, roomID uint64) ([]availability.Stay, error) {
	filter, args := blockingStatusPlaceholders()
	q := `SELECT check_in, check_out FROM bookings WHERE room_id = ? AND ` + filter + ` FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, append([]any{roomID}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stays []availability.Stay
	for rows.Next() {
		var s availability.Stay
		if err := rows.Scan(&s.CheckIn, &s.CheckOut); err != nil {
			return nil, err
		}
		stays = append(stays, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stays, nil
}

// BlockedRoomIDs returns the set of room IDs that cannot host the
// requested stay.  It pulls every blocking booking once and evaluates the
// overlap in Go with the same predicate the booking flow uses, so the two
// paths cannot disagree.  The result set is small (one entry per room at
// most), which suits the availability listing endpoint.
func (r *BookingRepo) BlockedRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[uint64]bool, error) {
	filter, args := blockingStatusPlaceholders()
	q := `SELECT room_id, check_in, check_out FROM bookings WHERE ` + filter
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requested := availability.Stay{CheckIn: checkIn, CheckOut: checkOut}
	blocked := make(map[uint64]bool)
	for rows.Next() {
		var roomID uint64
		var s availability.Stay
		if err := rows.Scan(&roomID, &s.CheckIn, &s.CheckOut); err != nil {
			return nil, err
		}
		if availability.Overlaps(requested, s) {
			blocked[roomID] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return blocked, nil
}

// List returns all bookings ordered newest first for the admin dashboard.
func (r *BookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatusTx sets a booking's status within a transaction and returns
// the updated record along with the status it held before.  Any state may
// move to any other; the lifecycle does not enforce a transition graph.
// Returns ErrBookingNotFound when the ID does not resolve, in which case
// nothing has been written.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.BookingStatus) (*model.Booking, model.BookingStatus, error) {
	const sel = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrBookingNotFound
		}
		return nil, "", err
	}
	old := b.Status

	const q = `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q, string(status), id); err != nil {
		return nil, "", err
	}
	b, err = scanBooking(tx.QueryRowContext(ctx, sel, id))
	if err != nil {
		return nil, "", err
	}
	return b, old, nil
}

// RoomIDTx resolves a booking's room without taking any lock.  The status
// transition flow calls it first so it can lock the room row before any
// booking rows, in the same order booking creation acquires them.  A
// booking's room reference is immutable, so reading it unlocked is safe.
func (r *BookingRepo) RoomIDTx(ctx context.Context, tx *sql.Tx, id uint64) (uint64, error) {
	var roomID uint64
	err := tx.QueryRowContext(ctx, `SELECT room_id FROM bookings WHERE id = ?`, id).Scan(&roomID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrBookingNotFound
	}
	return roomID, err
}

// RoomOccupiedTx reports whether any booking currently keeps the room's
// occupancy flag raised, locking the room's booking rows.  The fold over
// statuses lives in availability.Occupied so it can be reasoned about and
// tested without a database.
func (r *BookingRepo) RoomOccupiedTx(ctx context.Context, tx *sql.Tx, roomID uint64) (bool, error) {
	const q = `SELECT status FROM bookings WHERE room_id = ? FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, roomID)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	var statuses []model.BookingStatus
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return false, err
		}
		statuses = append(statuses, model.BookingStatus(status))
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return availability.Occupied(statuses), nil
}
