package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"talenthub/internal/export"
)

func multipartUpload(t *testing.T, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestUploadLogo_StoredUnderFixedName(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir)
	e := echo.New()

	body, contentType := multipartUpload(t, "company-logo.png")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/logo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	err := h.UploadLogo(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "/uploads/logo.png")

	stored := filepath.Join(dir, "logo.png")
	_, statErr := os.Stat(stored)
	assert.NoError(t, statErr)

	// the exporter resolves the same file
	assert.Equal(t, stored, export.FindLogo(dir))
}

func TestUploadTemplate_GetsUniqueName(t *testing.T) {
	dir := t.TempDir()
	h := NewUploadHandler(dir)
	e := echo.New()

	for i := 0; i < 2; i++ {
		body, contentType := multipartUpload(t, "banner.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/upload/template", body)
		req.Header.Set(echo.HeaderContentType, contentType)
		rec := httptest.NewRecorder()

		assert.NoError(t, h.UploadTemplate(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	h := NewUploadHandler(t.TempDir())
	e := echo.New()

	body, contentType := multipartUpload(t, "resume.pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/logo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	err := h.UploadLogo(e.NewContext(req, rec))

	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
