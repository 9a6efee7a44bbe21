package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pratishelar/realtor-sub000/media"
)

type UploadController struct {
	client *media.Client
}

func NewUploadController() *UploadController {
	return &UploadController{client: media.NewClient()}
}

// UploadImages pushes every file of the multipart "files" field to the media
// service in parallel. One failing file fails the whole batch.
func (uc *UploadController) UploadImages(c echo.Context) error {
	return uc.upload(c, false)
}

// UploadDocuments is the arbitrary-file variant used for floor plans and
// brochures.
func (uc *UploadController) UploadDocuments(c echo.Context) error {
	return uc.upload(c, true)
}

func (uc *UploadController) upload(c echo.Context, raw bool) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid multipart form"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No files provided"})
	}

	files := make([]media.File, 0, len(headers))
	for _, header := range headers {
		src, err := header.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read uploaded file"})
		}
		defer src.Close()
		files = append(files, media.File{Name: header.Filename, Reader: src})
	}

	urls, err := uc.client.UploadAll(context.Background(), files, raw)
	if err != nil {
		log.Printf("Media upload failed: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to upload files"})
	}
	return c.JSON(http.StatusOK, map[string][]string{"urls": urls})
}
