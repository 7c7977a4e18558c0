package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// HealthHandler reports service liveness together with database
// reachability so load balancers and monitoring systems see storage
// trouble as well as process trouble.
type HealthHandler struct {
	DB *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler { return &HealthHandler{DB: db} }

// Health handles GET /api/health.  It always answers 200 with a JSON body;
// the database field flips to "disconnected" when a short ping fails.
func (h *HealthHandler) Health(c echo.Context) error {
	dbStatus := "connected"
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		dbStatus = "disconnected"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  dbStatus,
	})
}
