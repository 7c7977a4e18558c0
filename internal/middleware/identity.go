package middleware

// identity.go defines helper functions shared across middleware files.
// callerID returns a stable identifier for the current request's caller,
// used by the rate limiter to bucket requests per admin.  Public guests
// carry no token, so they all fall into the "guest" bucket and are
// distinguished by IP in the rate key instead.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// callerID extracts the admin identifier stored by JWTAuth.  It returns
// "guest" when no admin is authenticated.
func callerID(c echo.Context) string {
	if v := c.Get("admin_id"); v != nil {
		// The sub claim decodes as float64 from JSON; render whatever we got.
		return fmt.Sprint(v)
	}
	return "guest"
}
