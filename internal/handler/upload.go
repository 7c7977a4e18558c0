package handler

import (
	"net/http" // HTTP status codes
	"strings"  // MIME type prefix checks

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/storage"
)

// UploadHandler accepts room image uploads from the dashboard and hands
// them to the file store, which generates the stored filename.  The
// dashboard then attaches the returned filename to a room's image list.
type UploadHandler struct {
	Cfg   config.Config
	Files *storage.Store
}

func NewUploadHandler(cfg config.Config, files *storage.Store) *UploadHandler {
	if files == nil {
		panic("nil store passed to NewUploadHandler")
	}
	return &UploadHandler{Cfg: cfg, Files: files}
}

// UploadImage handles POST /api/admin/upload.  The multipart field must be
// named "image", carry an image/* content type and stay under the
// configured size cap.  On success it returns the generated filename the
// file is now stored under.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no file uploaded"})
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "only image files are allowed"})
	}
	if file.Size > h.Cfg.MaxUploadBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file size is too large"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to open uploaded file"})
	}
	defer src.Close()

	name, err := h.Files.SaveImage(src, file.Filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save image"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"filename":     name,
		"originalName": file.Filename,
		"size":         file.Size,
	})
}
