// Package normalize converts heterogeneous user-supplied node attributes
// into canonical numeric values. Generated architecture JSON carries sizes
// as "100GB" or "2TB" or bare numbers, memory as "256MB", and counts as
// "5 million"; every function here coerces best-effort and falls back to a
// caller-supplied default instead of failing.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

const gbPerTB = 1024
const mbPerGB = 1024

var leadingNumber = regexp.MustCompile(`^\s*(\d+\.?\d*|\.\d+)`)

// ParseSizeGB parses a storage size into GB. Recognized suffixes are TB, GB
// and MB (case-insensitive); a bare number is taken as GB. Unparseable
// input returns defaultVal.
func ParseSizeGB(v interface{}, defaultVal float64) float64 {
	switch t := v.(type) {
	case nil:
		return defaultVal
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	case string:
		s := strings.ToUpper(strings.TrimSpace(t))
		m := leadingNumber.FindString(s)
		if m == "" {
			return defaultVal
		}
		num := parseFloat(strings.TrimSpace(m), defaultVal)
		switch {
		case strings.Contains(s, "TB"):
			return num * gbPerTB
		case strings.Contains(s, "MB"):
			return num / mbPerGB
		default:
			// GB suffix or no unit: already GB
			return num
		}
	}
	return defaultVal
}

// ParseMemoryMB parses a memory size into MB. Default unit is MB; a GB
// suffix multiplies by 1024.
func ParseMemoryMB(v interface{}, defaultVal float64) float64 {
	switch t := v.(type) {
	case nil:
		return defaultVal
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	case string:
		s := strings.ToUpper(strings.TrimSpace(t))
		m := leadingNumber.FindString(s)
		if m == "" {
			return defaultVal
		}
		num := parseFloat(strings.TrimSpace(m), defaultVal)
		if strings.Contains(s, "GB") {
			return num * mbPerGB
		}
		return num
	}
	return defaultVal
}

// ToFloat converts almost anything to a float64 for counts and quantities.
// Strings may carry magnitude words ("5 million", "1.2 billion") or a TB
// unit (scaled to GB); anything else non-numeric yields defaultVal. Never
// returns an error.
func ToFloat(v interface{}, defaultVal float64) float64 {
	switch t := v.(type) {
	case nil:
		return defaultVal
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	case bool:
		if t {
			return 1
		}
		return 0
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		if s == "" {
			return defaultVal
		}
		m := leadingNumber.FindString(s)
		if m == "" {
			return defaultVal
		}
		num := parseFloat(strings.TrimSpace(m), defaultVal)
		switch {
		case strings.Contains(s, "tb") || strings.Contains(s, "terabyte"):
			num *= gbPerTB
		case strings.Contains(s, "billion"):
			num *= 1e9
		case strings.Contains(s, "million"):
			num *= 1e6
		}
		return num
	}
	return defaultVal
}

// ToInt is ToFloat truncated to int
func ToInt(v interface{}, defaultVal int) int {
	return int(ToFloat(v, float64(defaultVal)))
}

func parseFloat(s string, defaultVal float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
