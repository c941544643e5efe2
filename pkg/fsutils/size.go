package fsutils

import "strconv"

// BytesPerMB is the binary megabyte (mebibyte) used for all MB figures.
const BytesPerMB = 1024 * 1024

// ToMB converts a byte count to megabytes.
func ToMB(size int64) float64 {
	return float64(size) / BytesPerMB
}

// FormatMB renders a byte count as megabytes with two decimals, e.g. "1.50".
func FormatMB(size int64) string {
	return strconv.FormatFloat(ToMB(size), 'f', 2, 64)
}
