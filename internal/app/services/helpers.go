package services

import "unicode/utf8"

const (
	maxDetailCause = 200
	maxStatusCause = 60
)

// truncate bounds s to at most limit runes.
func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
