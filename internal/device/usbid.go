package device

import (
	"regexp"
	"strings"
)

// USBID holds the vendor/product identity embedded in a device identifier.
type USBID struct {
	VID    string
	PID    string
	Serial string
}

var (
	// Windows stock USB driver: USB\VID_2341&PID_0043\75735323330351D0E151
	usbIDPattern = regexp.MustCompile(`VID_(....)&PID_(....)(\\(\w+)$)?`)

	// FTDI driver: FTDIBUS\VID_0403+PID_6001+A50285BIA\0000
	ftdiIDPattern = regexp.MustCompile(`VID_(....)\+PID_(....)(\+(\w+))?`)
)

// ParseUSBID extracts the VID, PID and serial number from a USB or FTDI
// device identifier. Serial is empty when the instance part is not a plain
// serial number (e.g. a generated "6&1A2B&0&1" instance id).
func ParseUSBID(id string) (USBID, bool) {
	var re *regexp.Regexp
	switch {
	case strings.HasPrefix(id, "USB"):
		re = usbIDPattern
	case strings.HasPrefix(id, "FTDIBUS"):
		re = ftdiIDPattern
	default:
		return USBID{}, false
	}

	m := re.FindStringSubmatch(id)
	if m == nil {
		return USBID{}, false
	}
	return USBID{VID: m[1], PID: m[2], Serial: m[4]}, true
}
