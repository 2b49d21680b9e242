package constants

import (
	"path/filepath"
	"strings"
)

// Batas ukuran gambar upload (bukti transfer, poster, dokumentasi).
const MaxImageSizeBytes = 5 * 1024 * 1024 // 5 MiB

// Batas jumlah gambar per entri dokumentasi (existing + baru).
const MaxDocumentationImages = 10

var allowedImageMimes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

var allowedImageExts = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

func IsAllowedImageMime(contentType string) bool {
	// buang parameter seperti "; charset=..."
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	_, ok := allowedImageMimes[strings.ToLower(strings.TrimSpace(contentType))]
	return ok
}

func IsAllowedImageExt(filename string) bool {
	_, ok := allowedImageExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}
