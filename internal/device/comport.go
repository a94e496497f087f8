package device

import "regexp"

var comPortPattern = regexp.MustCompile(`\\(COM\d+)`)

// ExtractCOMPort returns the first backslash-prefixed COMn token in id, or
// "" when there is none.
func ExtractCOMPort(id string) string {
	m := comPortPattern.FindStringSubmatch(id)
	if m == nil {
		return ""
	}
	return m[1]
}
