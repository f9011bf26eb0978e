// Package phone menormalkan nomor HP wali santri ke format lokal 08….
package phone

import "strings"

// Normalize: buang semua non-digit, "62…" → "0…", "8…" → "08…".
// Bentuk lain dibiarkan apa adanya (tanpa validasi panjang/asal nomor).
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "62"):
		return "0" + digits[2:]
	case strings.HasPrefix(digits, "8"):
		return "0" + digits
	default:
		return digits
	}
}

// DefaultPassword: enam digit terakhir nomor yang sudah dinormalkan.
// Nomor yang lebih pendek dari enam digit dipakai utuh.
func DefaultPassword(raw string) string {
	p := Normalize(raw)
	if len(p) <= 6 {
		return p
	}
	return p[len(p)-6:]
}
