package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AdminToken represents a signed JWT for an admin session along with its
// expiry.  The Token field contains the JWT string.  Exp stores the
// expiration timestamp as a time.Time.  The token is sent back in the
// Authorization header when calling protected dashboard endpoints.
type AdminToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT for an admin.  It takes the
// signing secret, the admin ID, the username, and a TTL in hours.  The JWT
// includes the subject (sub), the username, a fixed ADMIN role claim,
// expiration (exp) and issued at (iat).  Admin sessions are stateless:
// verification only needs the shared secret, no server-side session store.
func NewAdminToken(secret string, adminID uint64, username string, ttlHours int) (AdminToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
	claims := jwt.MapClaims{
		"sub":      adminID,
		"username": username,
		"role":     "ADMIN",
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AdminToken{}, err
	}
	return AdminToken{Token: signed, Exp: exp}, nil
}
