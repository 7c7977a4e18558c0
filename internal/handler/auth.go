package handler

import (
	"context"      // provides context with cancellation for DB calls
	"database/sql" // SQL database interactions
	"net/http"     // HTTP status codes and primitives
	"strings"      // string manipulation utilities
	"time"         // timeouts for DB calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/hotel-room-booking/internal/config"     // app configuration
	"github.com/iliyamo/hotel-room-booking/internal/repository" // DB repositories
	"github.com/iliyamo/hotel-room-booking/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for admin auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Admins *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Admins: a}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type adminPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
type loginResp struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	Admin   adminPart `json:"admin"`
}

// Login: verify credentials and return a signed token.  Unknown usernames
// and wrong passwords produce the same response so the endpoint does not
// leak which admin accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewAdminToken(h.Cfg.JWTSecret, a.ID, a.Username, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token:   token.Token,
		Expires: token.Exp,
		Admin:   adminPart{ID: a.ID, Username: a.Username},
	})
}

// Validate: confirm the presented token still verifies.  The JWTAuth
// middleware has already rejected bad tokens by the time this runs, so it
// only echoes the identity claims back to the dashboard.
func (h *AuthHandler) Validate(c echo.Context) error {
	username, _ := c.Get("username").(string)
	return c.JSON(http.StatusOK, echo.Map{
		"valid":    true,
		"username": username,
	})
}
