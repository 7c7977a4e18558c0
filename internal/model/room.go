package model

import "time"

// Room represents a bookable hotel room as stored in the `rooms` table.
// The label doubles as the lookup key used by the public booking endpoint,
// so it carries a unique index.  Images holds the ordered list of uploaded
// image filenames; the HTTP layer expands them to absolute URLs.  The
// occupancy flag is never written by room CRUD, only by booking status
// transitions.
//
// Fields:
//
//	ID          – primary key identifier.
//	Label       – unique display label (e.g. "Masmouda").
//	Description – free-text description shown to guests.
//	Price       – nightly price.
//	Images      – ordered image filenames under the upload directory.
//	IsOccupied  – whether a guest is currently checked in.
//	CreatedAt   – creation timestamp.
//	UpdatedAt   – last update timestamp.
type Room struct {
	ID          uint64    `json:"id"`          // rooms.id
	Label       string    `json:"label"`       // rooms.label
	Description string    `json:"description"` // rooms.description
	Price       float64   `json:"price"`       // rooms.price
	Images      []string  `json:"images"`      // rooms.images (JSON column)
	IsOccupied  bool      `json:"isOccupied"`  // rooms.is_occupied
	CreatedAt   time.Time `json:"createdAt"`   // rooms.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // rooms.updated_at
}
