package service

import (
	"strconv"

	"techclub_backend/internals/constants"
	"techclub_backend/internals/features/events/model"
)

// Status ketersediaan pendaftaran sebuah event. Ketidaktersediaan
// (gate admin) selalu menang atas kapasitas.
type AvailabilityStatus string

const (
	StatusOpen        AvailabilityStatus = "open"
	StatusFull        AvailabilityStatus = "full"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

// Classify menghitung status pendaftaran dari gate available + kapasitas.
// Nilai numerik negatif/kosong dianggap 0, sehingga quota 0 berarti penuh.
func Classify(available bool, registered, quota int) AvailabilityStatus {
	if !available {
		return StatusUnavailable
	}
	if registered < 0 {
		registered = 0
	}
	if quota < 0 {
		quota = 0
	}
	if registered >= quota {
		return StatusFull
	}
	return StatusOpen
}

// ClassifyEvent: satu-satunya tempat menurunkan status; semua response
// (kartu, detail, form) memakai ini supaya konsisten.
func ClassifyEvent(ev *model.EventModel) AvailabilityStatus {
	return Classify(ev.EventAvailable, ev.EventRegistered, ev.EventQuota)
}

// Label tampilan per status (dipakai tombol/overlay di frontend).
func StatusLabel(s AvailabilityStatus) string {
	switch s {
	case StatusFull:
		return "Kuota Penuh"
	case StatusUnavailable:
		return "Event Belum Tersedia"
	default:
		return "Tersedia"
	}
}

// FormatPrice membentuk label harga: event gratis → "Gratis",
// berbayar → "Rp 50.000" (pemisah ribuan titik).
func FormatPrice(eventType string, price int) string {
	if eventType != constants.EventTypePaid || price <= 0 {
		return "Gratis"
	}
	return "Rp " + groupThousands(price)
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}
	return string(out)
}

// RemainingQuota untuk ringkasan dashboard; tidak pernah negatif.
func RemainingQuota(ev *model.EventModel) int {
	rest := ev.EventQuota - ev.EventRegistered
	if rest < 0 {
		return 0
	}
	return rest
}
