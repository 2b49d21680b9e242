package service

import "strings"

const maxWhatsappDigits = 15

// NormalizeWhatsapp membuang semua karakter non-digit dan memotong ke
// maksimal 15 digit: "081-234 567890abc" → "081234567890".
func NormalizeWhatsapp(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == maxWhatsappDigits {
				break
			}
		}
	}
	return b.String()
}
