package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// Seed creates the initial admin account and the default room inventory
// when the respective tables are empty.  It runs once at process start and
// is idempotent: existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB, cfg config.Config) error {
	if err := seedAdmin(ctx, db, cfg); err != nil {
		return err
	}
	return seedRooms(ctx, db)
}

func seedAdmin(ctx context.Context, db *sql.DB, cfg config.Config) error {
	admins := repository.NewAdminRepo(db)
	_, err := admins.GetByUsername(ctx, cfg.AdminUser)
	if err == nil {
		return nil // already seeded
	}
	if err != sql.ErrNoRows {
		return err
	}
	if _, err := admins.Create(ctx, cfg.AdminUser, cfg.AdminPass, cfg.BcryptCost); err != nil {
		return err
	}
	log.Printf("seeded default admin account %q", cfg.AdminUser)
	return nil
}

func seedRooms(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []model.Room{
		{Label: "Masmouda", Description: "A cozy room with traditional decor.", Price: 60},
		{Label: "Sanhaja", Description: "Spacious room perfect for couples.", Price: 75},
		{Label: "Ait Sadden", Description: "Modern amenities with a traditional touch.", Price: 80},
		{Label: "Ait Youssi", Description: "Great for families and groups.", Price: 95},
		{Label: "Ait Ayoub", Description: "Peaceful room with garden view.", Price: 70},
		{Label: "Allal El Fassi", Description: "Elegant design and comfort.", Price: 85},
		{Label: "Ait Ali", Description: "Top-tier room with best amenities.", Price: 100},
	}
	rooms := repository.NewRoomRepo(db)
	for i := range defaults {
		if err := rooms.Create(ctx, &defaults[i]); err != nil {
			return err
		}
	}
	log.Printf("seeded %d default rooms", len(defaults))
	return nil
}
