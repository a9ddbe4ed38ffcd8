package utils

import (
	"strings"
	"time"

	"nutriplan/enums"
)

// ParseDate parses a YYYY-MM-DD form value into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(enums.DateLayout, strings.TrimSpace(s), time.UTC)
}
