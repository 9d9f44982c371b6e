package handlers

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"inventory-app/internal/services"

	"github.com/gin-gonic/gin"
)

// maxImageBytes caps accepted uploads at 1,000,000 bytes.
const maxImageBytes = 1_000_000

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// formImage extracts the optional "image" upload from a multipart form.
// It returns (nil, false) when no file was provided, (nil, true) when a file
// was provided but failed the type/size filter, and the buffered upload
// otherwise. A rejected file is treated as absent for persistence but is
// reported as a field error by the caller.
func formImage(c *gin.Context) (*services.ImageUpload, bool) {
	header, err := c.FormFile("image")
	if err != nil || header.Filename == "" || header.Size == 0 {
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	mediaType := header.Header.Get("Content-Type")
	if !allowedImageExts[ext] || !allowedImageTypes[mediaType] || header.Size > maxImageBytes {
		return nil, true
	}

	src, err := header.Open()
	if err != nil {
		return nil, true
	}
	defer src.Close()

	// Buffer the whole file; the size cap keeps this small. The extra byte
	// catches a part whose declared size understated the payload.
	data, err := io.ReadAll(io.LimitReader(src, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		return nil, true
	}

	return &services.ImageUpload{Ext: ext, Data: bytes.NewReader(data)}, false
}
