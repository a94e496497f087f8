package device

import "strings"

var dependentUnescaper = strings.NewReplacer(`\\`, `\`, `\"`, `"`)

// ParseDependent extracts the device identifier from an association
// reference such as
//
//	\\HOST\root\cimv2:Win32_PnPEntity.DeviceID="USB\\VID_046D&PID_C52B\\6&1A2B"
//
// The value after the first '=' has its surrounding quotes removed and its
// backslash escapes undone. ok is false when the reference carries no value.
func ParseDependent(dependent string) (id string, ok bool) {
	_, value, found := strings.Cut(dependent, "=")
	if !found {
		return "", false
	}

	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, `"`)
	value = strings.TrimSuffix(value, `"`)
	if value == "" {
		return "", false
	}
	return dependentUnescaper.Replace(value), true
}
