package repository // repository holds data access logic for domain entities

import (
	"context"       // context is used to manage deadlines and cancellation
	"database/sql"  // sql provides DB primitives
	"encoding/json" // json encodes the image filename list into its column
	"errors"        // errors package allows sentinel error definitions
	"strings"       // strings is used to detect duplicate-key failures

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides CRUD access to the rooms table.  Image filename lists
// are stored as a JSON array in the `images` column and decoded into
// []string on the way out.  The occupancy flag is written exclusively by
// SetOccupiedTx as part of booking status transitions.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions that
// span rooms and bookings.
func (r *RoomRepo) DB() *sql.DB { return r.db }

const roomColumns = `id, label, description, price, images, is_occupied, created_at, updated_at`

// scanRoom reads one room row from any row scanner and decodes the images
// JSON.  A NULL or empty images column yields an empty (non-nil) slice so
// JSON responses render [] instead of null.
func scanRoom(row interface{ Scan(...any) error }) (*model.Room, error) {
	var rm model.Room
	var images sql.NullString
	if err := row.Scan(&rm.ID, &rm.Label, &rm.Description, &rm.Price, &images,
		&rm.IsOccupied, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		return nil, err
	}
	rm.Images = []string{}
	if images.Valid && strings.TrimSpace(images.String) != "" {
		if err := json.Unmarshal([]byte(images.String), &rm.Images); err != nil {
			return nil, err
		}
	}
	return &rm, nil
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Create inserts a new room and reads the record back so the generated ID,
// occupancy default and timestamps are populated on the provided struct.
// It returns ErrLabelExists when the label collides with an existing room.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	images, err := encodeImages(rm.Images)
	if err != nil {
		return err
	}
	const qInsert = `INSERT INTO rooms (label, description, price, images) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, rm.Label, rm.Description, rm.Price, images)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrLabelExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)

	got, err := r.GetByID(ctx, rm.ID)
	if err != nil {
		return err
	}
	*rm = *got
	return nil
}

// GetByID retrieves a room by its ID.  It returns ErrRoomNotFound when no
// row is found.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`
	rm, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

// GetByLabelTx retrieves a room by its label inside a transaction, locking
// the row with FOR UPDATE.  The public booking flow uses this lock to
// serialize concurrent submissions for the same room so the availability
// check and the insert act as one atomic step.  Returns ErrRoomNotFound
// when no room carries the label.
func (r *RoomRepo) GetByLabelTx(ctx context.Context, tx *sql.Tx, label string) (*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms WHERE label = ? FOR UPDATE`
	rm, err := scanRoom(tx.QueryRowContext(ctx, q, label))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

// List returns all rooms ordered newest first, matching the admin
// dashboard's display order.
func (r *RoomRepo) List(ctx context.Context) ([]*model.Room, error) {
	const q = `SELECT ` + roomColumns + ` FROM rooms ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites a room's label, description, price and image list.
// Returns ErrRoomNotFound when the room no longer exists and
// ErrLabelExists when the new label collides with another room.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	images, err := encodeImages(rm.Images)
	if err != nil {
		return err
	}
	// Existence is checked up front because MySQL reports zero affected
	// rows for a no-op update as well as for a missing one.
	if _, err := r.GetByID(ctx, rm.ID); err != nil {
		return err
	}
	const q = `UPDATE rooms
               SET label = ?, description = ?, price = ?, images = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q, rm.Label, rm.Description, rm.Price, images, rm.ID); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrLabelExists
		}
		return err
	}
	got, err := r.GetByID(ctx, rm.ID)
	if err != nil {
		return err
	}
	*rm = *got
	return nil
}

// Delete removes a room and returns the deleted record so the caller can
// clean up its image files.  Bookings referencing the room are retained as
// history with their denormalized label.  Returns ErrRoomNotFound when the
// room does not exist.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) (*model.Room, error) {
	rm, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = `DELETE FROM rooms WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrRoomNotFound
	}
	return rm, nil
}

// LockTx takes the row lock on a room inside the given transaction without
// reading it.  Every transactional flow that later locks a room's booking
// rows must lock the room row first, through this or GetByLabelTx, so
// concurrent flows acquire locks in a single order and cannot deadlock.
// Returns ErrRoomNotFound when the room has been deleted.
func (r *RoomRepo) LockTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	var got uint64
	err := tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = ? FOR UPDATE`, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRoomNotFound
	}
	return err
}

// SetOccupiedTx writes the room's occupancy flag within a transaction.  It
// is called only from the booking status transition flow, which derives
// the value from the room's current set of checked-in bookings.
func (r *RoomRepo) SetOccupiedTx(ctx context.Context, tx *sql.Tx, roomID uint64, occupied bool) error {
	const q = `UPDATE rooms SET is_occupied = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, occupied, roomID)
	return err
}
