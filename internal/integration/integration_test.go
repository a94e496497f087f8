//go:build integration && windows

package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/buckleypaul/findport/internal/device"
	"github.com/buckleypaul/findport/internal/report"
	"github.com/buckleypaul/findport/internal/serial"
	"github.com/buckleypaul/findport/internal/ui"
)

// requireHardware skips unless FINDPORT_HARDWARE is set, since CI hosts may
// have no USB devices attached.
func requireHardware(t *testing.T) {
	t.Helper()
	if os.Getenv("FINDPORT_HARDWARE") == "" {
		t.Skip("FINDPORT_HARDWARE not set; skipping live device tests")
	}
}

// TestIntegrationControllerRelationship queries the live WMI backend and
// checks every record was resolved from a USB controller association.
func TestIntegrationControllerRelationship(t *testing.T) {
	requireHardware(t)

	records, err := device.NewService(device.DefaultBackend(), device.WithLogger(t.Logf)).Query(device.ControllerRelationship)
	if err != nil {
		t.Fatalf("controller query failed: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("expected at least one device behind a USB controller")
	}
	for _, r := range records {
		if r.DeviceID == "" || r.DependentID == "" {
			t.Errorf("incomplete record: %+v", r)
		}
	}
}

// TestIntegrationUsbPnpEntities checks the entity filter only returns USB
// identifiers.
func TestIntegrationUsbPnpEntities(t *testing.T) {
	requireHardware(t)

	records, err := device.NewService(device.DefaultBackend()).Query(device.UsbPnpEntities)
	if err != nil {
		t.Fatalf("entity query failed: %v", err)
	}
	for _, r := range records {
		if !strings.Contains(strings.ToUpper(r.DeviceID), "USB") {
			t.Errorf("non-USB identifier returned: %s", r.DeviceID)
		}
	}
}

// TestIntegrationOverview renders the overview against the real host and
// checks every listed port appears in the output.
func TestIntegrationOverview(t *testing.T) {
	requireHardware(t)

	ports := serial.NewLister(serial.SourceAuto)
	var b strings.Builder
	res := report.Overview(&b, device.NewService(device.DefaultBackend()), ports, report.Options{Styles: ui.PlainStyles()})
	if res.Err != nil {
		t.Fatalf("overview failed: %v\n%s", res.Err, b.String())
	}

	t.Logf("overview output:\n%s", b.String())
	for _, name := range ports.PortNames() {
		if !strings.Contains(b.String(), "- "+name) {
			t.Errorf("port %s missing from overview", name)
		}
	}
}
