package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"talenthub/internal/errors"
)

// UploadHandler stores staff-uploaded assets (logos, template images) under
// the configured upload directory and hands back their public URL. The 5MB
// body limit is enforced by the router.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// UploadLogo godoc
// @Summary Upload a company logo
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Logo image (max 5MB)"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /upload/logo [post]
func (h *UploadHandler) UploadLogo(c echo.Context) error {
	return h.store(c, "logo")
}

// UploadTemplate godoc
// @Summary Upload a template asset
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Template asset (max 5MB)"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /upload/template [post]
func (h *UploadHandler) UploadTemplate(c echo.Context) error {
	return h.store(c, "template")
}

func (h *UploadHandler) store(c echo.Context, kind string) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "missing file field",
			Code:  "MISSING_FILE",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unsupported file type",
			Code:  "UNSUPPORTED_FILE_TYPE",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to read upload",
			Code:  "UPLOAD_FAILED",
		})
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to store upload",
			Code:  "UPLOAD_FAILED",
		})
	}

	// The logo keeps a fixed name so the resume exporter can locate it; a new
	// upload replaces the previous one. Other assets get unique names.
	name := kind + "_" + uuid.New().String() + ext
	if kind == "logo" {
		name = "logo" + ext
	}
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to store upload",
			Code:  "UPLOAD_FAILED",
		})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to store upload",
			Code:  "UPLOAD_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"url": "/uploads/" + name,
	})
}
