package helper

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Header: h, Size: size}
}

func TestValidateImageUpload(t *testing.T) {
	// 1 MiB PNG diterima
	assert.NoError(t, ValidateImageUpload(fileHeader("bukti.png", "image/png", 1<<20)))

	// 6 MiB JPEG ditolak (melebihi 5 MiB)
	err := ValidateImageUpload(fileHeader("bukti.jpg", "image/jpeg", 6<<20))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ukuran")

	// 1 MiB BMP ditolak (tipe tidak didukung)
	err = ValidateImageUpload(fileHeader("bukti.bmp", "image/bmp", 1<<20))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tipe file")

	// nil aman (file opsional)
	assert.NoError(t, ValidateImageUpload(nil))
}

func TestValidateImageUploadFallbackExt(t *testing.T) {
	// tanpa Content-Type → cek ekstensi
	assert.NoError(t, ValidateImageUpload(fileHeader("poster.webp", "", 1<<20)))
	assert.Error(t, ValidateImageUpload(fileHeader("dokumen.pdf", "", 1<<20)))
}

func TestValidateImageUploadBoundary(t *testing.T) {
	// tepat 5 MiB masih diterima
	assert.NoError(t, ValidateImageUpload(fileHeader("a.gif", "image/gif", 5<<20)))
	assert.Error(t, ValidateImageUpload(fileHeader("a.gif", "image/gif", 5<<20+1)))
}
