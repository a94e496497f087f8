package report

import (
	"io"

	"github.com/buckleypaul/findport/internal/device"
)

// Detailed prints every device attached to a USB controller, resolved
// through the controller relationship records.
func Detailed(w io.Writer, q device.Querier, opts Options) (res Result) {
	p := printer{w: w, styles: opts.Styles}
	defer guard(p, &res)

	if q == nil {
		res.Err = ErrNoQuerier
		p.failure(res.Err)
		return res
	}

	records, err := q.Query(device.ControllerRelationship)
	if len(records) > 0 {
		p.heading("Detailed USB Device specific investigations:")
		p.banner()
	}

	for _, r := range records {
		p.field("Device Name", r.Name)
		p.field("Description", r.Description)
		p.field("Device ID", r.DeviceID)
		p.blank()
		if r.EntityID != "" {
			p.field("Port Information", r.EntityID)
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
