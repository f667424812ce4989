package utils

import (
	"fmt"
	"strings"
)

var sizeUnitSuffixes = []string{"b", "kb", "mb", "gb", "tb", "pb"}

// FormatFileSize renders a byte count with a compact lower-case unit suffix,
// as shown in the clipboard confirmation line.
func FormatFileSize(byteCount int64) string {
	if byteCount < 0 {
		return "0b"
	}
	scaledValue := float64(byteCount)
	suffixIndex := 0
	for scaledValue >= 1024 && suffixIndex < len(sizeUnitSuffixes)-1 {
		scaledValue /= 1024
		suffixIndex++
	}
	if suffixIndex == 0 {
		return fmt.Sprintf("%db", byteCount)
	}
	if scaledValue < 10 {
		roundedValue := strings.TrimSuffix(fmt.Sprintf("%.1f", scaledValue), ".0")
		return roundedValue + sizeUnitSuffixes[suffixIndex]
	}
	return fmt.Sprintf("%.0f%s", scaledValue, sizeUnitSuffixes[suffixIndex])
}
