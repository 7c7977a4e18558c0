package model

import "time"

// Admin models a row in the `admins` table.  A single admin account is
// seeded at process start when none exists; the password is stored only as
// a bcrypt hash.
//
// Fields:
//
//	ID           – primary key identifier.
//	Username     – unique login name.
//	PasswordHash – bcrypt hashed password.
//	CreatedAt    – timestamp of creation.
type Admin struct {
	ID           uint64    // admins.id
	Username     string    // admins.username
	PasswordHash string    // admins.password_hash
	CreatedAt    time.Time // admins.created_at
}
