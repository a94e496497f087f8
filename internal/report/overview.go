package report

import (
	"io"

	"github.com/buckleypaul/findport/internal/device"
	"github.com/buckleypaul/findport/internal/serial"
)

// Overview prints the available serial ports followed by every USB PnP
// device, with the COM port each one exposes when its identifier names one.
func Overview(w io.Writer, q device.Querier, ports serial.Lister, opts Options) (res Result) {
	p := printer{w: w, styles: opts.Styles}
	defer guard(p, &res)

	if ports != nil {
		if list := ports.Ports(); len(list) > 0 {
			p.line(p.styles.Heading.Render("Available COM Ports:"))
			for _, port := range list {
				p.banner()
				p.line("- " + p.styles.Port.Render(port.Name))
				if opts.ShowUSBIDs && port.IsUSB && port.VID != "" {
					p.usbID(port.VID, port.PID, port.SerialNumber)
				}
				p.banner()
			}
		}
	}

	p.heading("Detailed USB Device and COM port Information:")
	p.banner()

	if q == nil {
		res.Err = ErrNoQuerier
		p.failure(res.Err)
		return res
	}

	records, err := q.Query(device.UsbPnpEntities)
	for _, r := range records {
		p.field("Device Name", r.Name)
		p.field("Description", r.Description)
		p.field("Device ID", r.DeviceID)

		if port := device.ExtractCOMPort(r.DeviceID); port != "" {
			p.field("COM Port", p.styles.Port.Render(port))
		}
		if opts.ShowUSBIDs {
			if id, ok := device.ParseUSBID(r.DeviceID); ok {
				p.usbID(id.VID, id.PID, id.Serial)
			}
		}

		p.banner()
		res.Records++
	}

	if err != nil {
		res.Err = err
		p.failure(err)
	}
	return res
}
