package utils

import (
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseFloat converts a form value to float64, 0 when empty or malformed
func ParseFloat(value string) float64 {
	if value == "" {
		return 0
	}

	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return result
}

// ParseBool accepts "true"/"1" as true, anything else as false
func ParseBool(value string) bool {
	return value == "true" || value == "1"
}

// SplitCSV splits a comma-separated value, trimming blanks
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}

	var parts []string
	for _, p := range strings.Split(value, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}
