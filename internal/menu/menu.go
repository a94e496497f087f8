// Package menu implements the line-oriented interactive menu.
//
// The loop reads one line at a time, dispatches valid choices to a report,
// and always returns to the prompt: report failures are printed, never
// propagated.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/buckleypaul/findport/internal/device"
	"github.com/buckleypaul/findport/internal/report"
	"github.com/buckleypaul/findport/internal/serial"
	"github.com/buckleypaul/findport/internal/ui"
)

// InvalidInput is printed for any line that is not a menu key.
const InvalidInput = "Invalid input."

// Menu keys.
const (
	KeyDetailed = 1
	KeyOverview = 2
	KeyExit     = 3
)

// Option is one menu entry.
type Option struct {
	Key   int
	Label string
}

var options = []Option{
	{Key: KeyDetailed, Label: "USB Detailed"},
	{Key: KeyOverview, Label: "Overview of USB devices and COM ports"},
	{Key: KeyExit, Label: "To exit"},
}

var prompt = buildPrompt(options)

// Options returns a copy of the menu entries in display order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// Prompt returns the line printed before each read.
func Prompt() string {
	return prompt
}

func buildPrompt(opts []Option) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, fmt.Sprintf("'%d' for '%s'", o.Key, o.Label))
	}
	return "Enter " + strings.Join(parts, " or ")
}

// ParseChoice returns the menu key for line. ok is false for non-numeric,
// empty or out-of-range input.
func ParseChoice(line string) (key int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	for _, o := range options {
		if o.Key == n {
			return n, true
		}
	}
	return 0, false
}

// State is the menu's position in its loop.
type State int

const (
	MenuPrompt State = iota
	RunningDetailedReport
	RunningOverviewReport
	Terminated
)

func (s State) String() string {
	switch s {
	case MenuPrompt:
		return "MenuPrompt"
	case RunningDetailedReport:
		return "RunningDetailedReport"
	case RunningOverviewReport:
		return "RunningOverviewReport"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Runner drives the menu over a device querier and a port lister.
type Runner struct {
	devices device.Querier
	ports   serial.Lister
	opts    report.Options
	state   State

	// Logf receives one line per finished report. Nil discards.
	Logf func(format string, args ...any)
}

// NewRunner creates a Runner in the MenuPrompt state.
func NewRunner(devices device.Querier, ports serial.Lister, opts report.Options) *Runner {
	return &Runner{
		devices: devices,
		ports:   ports,
		opts:    opts,
	}
}

// State returns the current state.
func (r *Runner) State() State {
	return r.state
}

// Run prompts and handles lines from in until the exit key or end of input.
// Lines have no length limit. Only read errors other than io.EOF are
// returned.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	rd := bufio.NewReader(in)
	r.state = MenuPrompt

	for r.state != Terminated {
		fmt.Fprintln(out, Prompt())
		line, err := rd.ReadString('\n')
		if err != nil && line == "" {
			r.state = Terminated
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		// a final line without a newline is still handled
		r.Handle(strings.TrimRight(line, "\r\n"), out)
	}
	return nil
}

// Handle applies one line of input and returns the resulting state.
func (r *Runner) Handle(line string, out io.Writer) State {
	key, ok := ParseChoice(line)
	if !ok {
		fmt.Fprintln(out, InvalidInput)
		return r.state
	}

	if key == KeyExit {
		r.state = Terminated
		return r.state
	}

	r.RunChoice(key, out)
	return r.state
}

// RunChoice runs the report for key and returns to MenuPrompt. ok is false
// when key does not name a report.
func (r *Runner) RunChoice(key int, out io.Writer) (res report.Result, ok bool) {
	switch key {
	case KeyDetailed:
		r.state = RunningDetailedReport
		r.banner(out)
		res = report.Detailed(out, r.devices, r.opts)
	case KeyOverview:
		r.state = RunningOverviewReport
		r.banner(out)
		res = report.Overview(out, r.devices, r.ports, r.opts)
	default:
		return report.Result{}, false
	}

	r.logResult(key, res)
	r.state = MenuPrompt
	return res, true
}

func (r *Runner) banner(out io.Writer) {
	fmt.Fprintln(out, r.opts.Styles.Banner.Render(ui.Banner()))
}

func (r *Runner) logResult(key int, res report.Result) {
	if r.Logf == nil {
		return
	}
	if res.Err != nil {
		r.Logf("report %d failed after %d records: %v", key, res.Records, res.Err)
		return
	}
	r.Logf("report %d printed %d records", key, res.Records)
}
