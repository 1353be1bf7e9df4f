package valueobjects

import "regexp"

var durationPattern = regexp.MustCompile(`^P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)

// IsValidISODuration reports whether s is an ISO 8601 duration such as "P1D" or "PT1H30M".
// At least one component is required: "P" or "PT" alone are rejected.
func IsValidISODuration(s string) bool {
	if !durationPattern.MatchString(s) {
		return false
	}
	if len(s) < 2 {
		return false
	}
	if isDigit(s[1]) {
		return true
	}
	return s[1] == 'T' && len(s) > 2 && isDigit(s[2])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
