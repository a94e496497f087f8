// Package report renders the detailed and overview device reports.
//
// Each report streams its text to an io.Writer as records arrive and hands
// back a Result instead of failing: a query error is printed after whatever
// was already written and returned in Result.Err for the caller to log.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/buckleypaul/findport/internal/ui"
)

// ErrorPrefix starts the line printed when a report fails.
const ErrorPrefix = "An error occurred while retrieving USB device information: "

// ErrNoQuerier is reported when a report runs without a device querier.
var ErrNoQuerier = errors.New("no device querier configured")

// Result is the outcome of one report run.
type Result struct {
	Records int
	Err     error
}

// OK reports whether the run completed without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Options control report formatting.
type Options struct {
	Styles ui.Styles

	// ShowUSBIDs adds "USB ID" and "USB Serial" lines to the overview for
	// USB serial ports and for identifiers that carry a VID/PID.
	ShowUSBIDs bool
}

type printer struct {
	w      io.Writer
	styles ui.Styles
}

func (p printer) line(s string) {
	fmt.Fprintln(p.w, s)
}

func (p printer) blank() {
	fmt.Fprintln(p.w)
}

func (p printer) banner() {
	p.line(p.styles.Banner.Render(ui.Banner()))
}

func (p printer) heading(s string) {
	p.blank()
	p.line(p.styles.Heading.Render(s))
	p.blank()
}

func (p printer) field(label, value string) {
	p.line(p.styles.Label.Render(label+":") + " " + value)
}

func (p printer) usbID(vid, pid, serial string) {
	p.field("USB ID", vid+":"+pid)
	if serial != "" {
		p.field("USB Serial", serial)
	}
}

// failure styles only the prefix so a multi-line cause is printed as is.
func (p printer) failure(err error) {
	prefix := strings.TrimSuffix(ErrorPrefix, " ")
	p.line(p.styles.Error.Render(prefix) + " " + err.Error())
}

// guard converts a panic inside a report into a Result error so the menu
// loop survives it.
func guard(p printer, res *Result) {
	if r := recover(); r != nil {
		res.Err = fmt.Errorf("unexpected failure: %v", r)
		p.failure(res.Err)
	}
}
