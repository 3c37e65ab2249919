package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmountCents converts a client-submitted amount ("250", "250.00") into
// integer cents. Anything non-numeric, non-finite, or not strictly positive is
// rejected with ErrInvalidAmount.
func ParseAmountCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrAmountRequired
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	cents := int64(math.Round(f * 100))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// FormatAmount renders cents as a 2-decimal currency string.
func FormatAmount(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
}
