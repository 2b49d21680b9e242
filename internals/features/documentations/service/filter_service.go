package service

import (
	"strings"

	"techclub_backend/internals/features/documentations/model"
)

// FilterDocumentations menyaring slice dokumentasi di memori tanpa mengubah
// urutan maupun slice sumbernya.
//   - category kosong atau "all" berarti semua kategori
//   - year <= 0 berarti semua tahun
//   - q dicocokkan sebagai substring (case-insensitive) pada judul event
//     atau deskripsi
func FilterDocumentations(docs []model.DocumentationModel, category string, year int, q string) []model.DocumentationModel {
	category = strings.TrimSpace(category)
	byCategory := category != "" && !strings.EqualFold(category, "all")

	q = strings.ToLower(strings.TrimSpace(q))

	result := make([]model.DocumentationModel, 0, len(docs))
	for _, d := range docs {
		if byCategory && d.DocumentationCategory != category {
			continue
		}
		if year > 0 && d.DocumentationYear != year {
			continue
		}
		if q != "" {
			title := strings.ToLower(d.DocumentationEventTitle)
			desc := strings.ToLower(d.DocumentationDescription)
			if !strings.Contains(title, q) && !strings.Contains(desc, q) {
				continue
			}
		}
		result = append(result, d)
	}
	return result
}
