package handler

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// validate checks request payload struct tags.  A single instance caches
// the parsed tag metadata across requests.
var validate = validator.New()

// stayDateLayout is the wire format for check-in/check-out dates.  Stays
// are date-granular; the HTTP layer never accepts times of day.
const stayDateLayout = "2006-01-02"

// parseStayDate parses a calendar date from a request, accepting the plain
// date form and, for lenient clients, a full RFC 3339 timestamp truncated
// to its date.  The result is midnight UTC, matching how the DATE columns
// come back from the driver.
func parseStayDate(s string) (time.Time, error) {
	if t, err := time.Parse(stayDateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// publicRoom is the wire shape of a room on guest-facing endpoints: the
// stored image filenames are expanded to absolute URLs under /uploads so
// the front end can render them directly.
type publicRoom struct {
	model.Room
	Images []string `json:"images"`
}

// toPublicRoom builds the guest-facing view of a room for the current
// request's scheme and host.
func toPublicRoom(c echo.Context, rm *model.Room) publicRoom {
	base := c.Scheme() + "://" + c.Request().Host + "/uploads/"
	urls := make([]string, 0, len(rm.Images))
	for _, img := range rm.Images {
		urls = append(urls, base+img)
	}
	return publicRoom{Room: *rm, Images: urls}
}
