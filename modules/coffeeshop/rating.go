package coffeeshop

import (
	"strconv"
	"strings"
)

// ParseRating reads a leading integer the way browsers' parseInt does:
// leading spaces and a sign are allowed and trailing text is ignored
// ("4 stars" is 4). Input without leading digits, or digits that overflow
// an int, yields nil.
func ParseRating(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
