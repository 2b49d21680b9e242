package helper

import (
	"fmt"
	"mime/multipart"

	"techclub_backend/internals/constants"
)

// ValidateImageUpload memeriksa tipe dan ukuran file gambar sebelum disimpan.
// Tipe dicek dari header Content-Type; kalau kosong, fallback ke ekstensi nama file.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType != "" {
		if !constants.IsAllowedImageMime(contentType) {
			return fmt.Errorf("tipe file tidak didukung (%s), gunakan JPG/PNG/WEBP/GIF", contentType)
		}
	} else if !constants.IsAllowedImageExt(fh.Filename) {
		return fmt.Errorf("tipe file tidak didukung, gunakan JPG/PNG/WEBP/GIF")
	}

	if fh.Size > constants.MaxImageSizeBytes {
		return fmt.Errorf("ukuran file melebihi %d MB", constants.MaxImageSizeBytes/(1024*1024))
	}
	return nil
}
