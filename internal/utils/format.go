package utils

import (
	"math"
	"strconv"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count in the largest unit where the value is
// at least 1, rounded to two decimal places (trailing zeros dropped).
func FormatBytes(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}

	value := float64(bytes)
	power := 0
	for value >= 1024 && power < len(byteUnits)-1 {
		value /= 1024
		power++
	}
	value = math.Round(value*100) / 100

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + byteUnits[power]
}
