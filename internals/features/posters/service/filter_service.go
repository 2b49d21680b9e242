package service

import (
	"strings"

	"techclub_backend/internals/features/posters/model"
)

// NormalizeType menyamakan label tipe poster sebelum dibandingkan:
// huruf kecil, "-" dan "_" menjadi spasi, whitespace dirapikan.
// Hasilnya "open-class", "Open Class", dan " OPEN_CLASS " dianggap sama.
func NormalizeType(t string) string {
	t = strings.ToLower(t)
	t = strings.ReplaceAll(t, "-", " ")
	t = strings.ReplaceAll(t, "_", " ")
	return strings.Join(strings.Fields(t), " ")
}

// FilterPosters menyaring slice poster di memori tanpa mengubah urutan.
// posterType kosong atau "all" berarti semua tipe.
func FilterPosters(posters []model.PosterModel, posterType string) []model.PosterModel {
	want := NormalizeType(posterType)
	if want == "" || want == "all" {
		out := make([]model.PosterModel, 0, len(posters))
		return append(out, posters...)
	}

	result := make([]model.PosterModel, 0, len(posters))
	for _, p := range posters {
		if NormalizeType(p.PosterType) == want {
			result = append(result, p)
		}
	}
	return result
}
