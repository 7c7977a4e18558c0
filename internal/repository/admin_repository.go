package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

// AdminRepo provides access to the admins table.  Only two operations are
// needed: looking an admin up for login and creating the seed account when
// the table is empty.  Admin records are never mutated afterwards.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// Create hashes the password and inserts an admin, returning its ID.
func (r *AdminRepo) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches an admin by username.  Callers treat
// sql.ErrNoRows as invalid credentials.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,created_at FROM admins WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}
