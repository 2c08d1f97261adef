package utils

import "strings"

// ContainsFold reports whether substr occurs in s, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
