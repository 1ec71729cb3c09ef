package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/electromart/marketplace-api/internal/core/ports"
)

// formImage opens the named multipart file field. A missing field is not an
// error — uploads are optional everywhere. The returned closer must be closed
// after the service call that consumes the upload.
func formImage(c echo.Context, field string) (*ports.ImageUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil, nil
		}
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid file upload")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
	}

	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, f, nil
}
