package handler

import (
	"errors"   // for errors.Is comparisons
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	"github.com/iliyamo/hotel-room-booking/internal/storage"
)

// AdminRoomHandler groups the dependencies for room management on the
// dashboard.  All methods assume JWT authentication and role validation
// have already been performed by middleware.  Room deletion also removes
// the room's image files through the store.
type AdminRoomHandler struct {
	Rooms *repository.RoomRepo
	Files *storage.Store
}

// NewAdminRoomHandler constructs an AdminRoomHandler.  Both dependencies
// must be non-nil.
func NewAdminRoomHandler(rooms *repository.RoomRepo, files *storage.Store) *AdminRoomHandler {
	if rooms == nil || files == nil {
		panic("nil dependency passed to NewAdminRoomHandler")
	}
	return &AdminRoomHandler{Rooms: rooms, Files: files}
}

type roomReq struct {
	Label       string   `json:"label" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images"`
}

// List handles GET /api/admin/rooms.  Unlike the public listing, images
// stay as raw filenames; the dashboard composes its own URLs.
func (h *AdminRoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Create handles POST /api/admin/rooms.
func (h *AdminRoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing or invalid room fields"})
	}
	room := &model.Room{
		Label:       req.Label,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
	}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		if errors.Is(err, repository.ErrLabelExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room label already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create room"})
	}
	return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /api/admin/rooms/:id.  Image filenames removed from
// the list are not deleted from disk here; only full room deletion cleans
// up files.
func (h *AdminRoomHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing or invalid room fields"})
	}
	room := &model.Room{
		ID:          id,
		Label:       req.Label,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
	}
	if err := h.Rooms.Update(c.Request().Context(), room); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrLabelExists):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room label already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update room"})
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/admin/rooms/:id.  The room row goes first;
// its image files are removed afterwards so a file-system hiccup cannot
// leave a half-deleted room behind.  Bookings that reference the room
// survive with their denormalized label.
func (h *AdminRoomHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	room, err := h.Rooms.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete room"})
	}
	h.Files.Remove(room.Images)
	return c.JSON(http.StatusOK, echo.Map{"message": "Room deleted successfully"})
}
