package logutil

// TruncateForLog shortens s to at most maxLen runes for log lines, marking the cut
// with "...". Upstream bodies can be large, so only a prefix is logged.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
