package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses a query parameter into a positive int,
// falling back when the value is absent or unusable.
func ParsePositiveInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// FilterParam normalizes a dropdown filter value: the UI sends "all"
// for an unset filter, which means no restriction.
func FilterParam(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "all") {
		return ""
	}
	return value
}
