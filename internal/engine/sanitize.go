package engine

import (
	"strconv"
	"strings"
)

// ParseIntOr parses the leading integer of text, returning fallback when
// there is none. "12abc" parses as 12 and "abc" as fallback.
func ParseIntOr(text string, fallback int) int {
	text = strings.TrimSpace(text)

	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return fallback
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
