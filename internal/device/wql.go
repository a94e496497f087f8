package device

import "strings"

const (
	controllerDevicesQuery = "SELECT Dependent FROM Win32_USBControllerDevice"
	usbEntitiesQuery       = "SELECT Name, Description, DeviceID FROM Win32_PnPEntity WHERE PNPDeviceID LIKE '%USB%'"
)

var wqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// entityByIDQuery builds the secondary lookup for one device identifier.
func entityByIDQuery(id string) string {
	return "SELECT Name, Description, DeviceID FROM Win32_PnPEntity WHERE DeviceID='" + wqlEscaper.Replace(id) + "'"
}
