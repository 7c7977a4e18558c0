package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv"                // .env loader for local development
	"github.com/labstack/echo/v4"             // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/database"
	"github.com/iliyamo/hotel-room-booking/internal/handler"
	appmw "github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/router"
	"github.com/iliyamo/hotel-room-booking/internal/storage"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Seed(context.Background(), db, cfg); err != nil {
		log.Fatalf("seed: %v", err)
	}

	files, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	admins := repository.NewAdminRepo(db)

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Static("/uploads", files.Dir())

	// Redis backs the response cache and rate limiter; when it is down
	// both middlewares disable themselves and the API keeps serving.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cacheMW := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	h := router.Handlers{
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(cfg, admins),
		Public:       handler.NewPublicHandler(rooms, bookings),
		AdminRoom:    handler.NewAdminRoomHandler(rooms, files),
		AdminBooking: handler.NewAdminBookingHandler(bookings, rooms),
		Upload:       handler.NewUploadHandler(cfg, files),
	}
	router.RegisterRoutes(e, h, cfg.JWTSecret, cacheMW, rateMW)

	// The consumer keeps its own reconnect loop; losing the broker only
	// pauses the booking log, never the API.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
