package service

import (
	"strings"

	"techclub_backend/internals/features/events/model"
)

// FilterEvents menyaring daftar event di memori: kategori "all"/kosong berarti
// tanpa filter kategori; q non-kosong dicocokkan case-insensitive sebagai
// substring judul atau deskripsi. Urutan input dipertahankan dan fungsi ini
// murni (idempotent, tanpa efek samping).
func FilterEvents(events []model.EventModel, category, q string) []model.EventModel {
	byCategory := category != "" && category != "all"
	q = strings.ToLower(strings.TrimSpace(q))

	out := make([]model.EventModel, 0, len(events))
	for _, ev := range events {
		if byCategory && ev.EventCategory != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(ev.EventTitle), q) &&
			!strings.Contains(strings.ToLower(ev.EventDescription), q) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
