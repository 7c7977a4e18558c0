// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrUnavailable indicates that a requested stay collides with
// an existing blocking booking, which the handler reports as a business
// conflict rather than a server fault.
package repository

import "errors"

// ErrUnavailable is returned when a booking cannot be created because the
// requested date range overlaps a confirmed or checked-in booking for the
// same room. Handlers should translate this into an HTTP 409 response.
var ErrUnavailable = errors.New("room unavailable for the selected dates")

// ErrLabelExists is returned when creating or renaming a room would
// duplicate another room's label. The label is the lookup key used by the
// public booking endpoint, so it must stay unique. Handlers should
// translate this into an HTTP 409 response.
var ErrLabelExists = errors.New("room label already exists")
