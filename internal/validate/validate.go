package validate

import (
	"strconv"
	"strings"
)

// ID parses a numeric path identifier. Store-assigned ids start at 1.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
