package helper

import (
	"strings"

	"techclub_backend/internals/configs"
)

// MediaURL menyelesaikan path media tersimpan menjadi URL publik.
// Urutan aturan:
//  1. sudah http(s) → pakai apa adanya (mis. hasil upload OSS)
//  2. diawali /storage/ → diprefix base URL API (file di-serve backend)
//  3. path absolut lain → pakai apa adanya (aset statis frontend)
//  4. path relatif → digabung dengan base URL API
func MediaURL(base, p string) string {
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	base = strings.TrimRight(base, "/")
	if strings.HasPrefix(p, "/storage/") {
		return base + p
	}
	if strings.HasPrefix(p, "/") {
		return p
	}
	return base + "/" + p
}

// ResolveMediaURL memakai base URL dari konfigurasi.
func ResolveMediaURL(p string) string {
	return MediaURL(configs.APIBaseURL, p)
}
