// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Uint64ToUint32 safely converts an uint64 to uint32 using cast and checks for overflow
func Uint64ToUint32(value uint64) (uint32, error) {
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("value %d exceeds uint32 range", value)
	}

	return cast.ToUint32E(value)
}

// StringToUint64 parses user input such as "86400" into a uint64.
func StringToUint64(value string) (uint64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty value, expected a non-negative integer")
	}
	if strings.HasPrefix(trimmed, "-") {
		return 0, fmt.Errorf("value %s is negative, cannot convert to uint64", trimmed)
	}

	return cast.ToUint64E(trimmed)
}

// StringToFloat64 parses user input such as "0.01" into a float64.
func StringToFloat64(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty value, expected a number")
	}

	return cast.ToFloat64E(trimmed)
}
