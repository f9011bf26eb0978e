package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"+6281234567890":   "081234567890",
		"81234567890":      "081234567890",
		"081234567890":     "081234567890",
		"0812-3456-7890":   "081234567890",
		"+62 812 3456 789": "08123456789",
		"(021) 555 1234":   "0215551234",
		"":                 "",
		"abc":              "",
		"12345":            "12345",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "Normalize(%q)", in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"+6281234567890", "81234567890", "081234567890", "62", "6262812",
		"8", "0", "+1 (555) 010-9999", "62-8-62", "   ", "६२८", "6208123",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestDefaultPassword(t *testing.T) {
	assert.Equal(t, "567890", DefaultPassword("+6281234567890"))
	assert.Equal(t, "567890", DefaultPassword("081234567890"))
	assert.Equal(t, "0812", DefaultPassword("812"))
}
