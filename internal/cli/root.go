// Package cli defines the findport cobra command.
//
// The command gates on the platform, layers config and flags, and then
// hands a menu.Runner to one of three front-ends: the line-oriented menu
// (default), a single report (--report), or the full-screen picker (--tui).
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/buckleypaul/findport/internal/app"
	"github.com/buckleypaul/findport/internal/config"
	"github.com/buckleypaul/findport/internal/device"
	"github.com/buckleypaul/findport/internal/menu"
	"github.com/buckleypaul/findport/internal/report"
	"github.com/buckleypaul/findport/internal/serial"
	"github.com/buckleypaul/findport/internal/ui"
)

// UnsupportedMessage is printed instead of the menu on non-Windows hosts.
const UnsupportedMessage = "This feature is only supported on Windows."

// Version, Commit and Date are set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Environment is everything the command reads from the host. Tests replace
// the pieces that touch the OS.
type Environment struct {
	// IsSupported is evaluated once before any device work.
	IsSupported func() bool

	Backend func() device.Backend
	Ports   func(serial.Source) serial.Lister

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnvironment binds the command to the real host.
func DefaultEnvironment() Environment {
	return Environment{
		IsSupported: IsWindows,
		Backend:     device.DefaultBackend,
		Ports: func(s serial.Source) serial.Lister {
			return serial.NewLister(s)
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// IsWindows reports whether the process runs on Windows.
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

type rootFlags struct {
	report     string
	tui        bool
	portSource string
	usbIDs     bool
	noColor    bool
	verbose    bool
	configPath string
	saveConfig bool
}

// NewRootCommand creates the findport command bound to env.
func NewRootCommand(env Environment) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "findport",
		Short: "Show which USB device is behind which COM port",
		Long: `findport lists USB devices and serial (COM) ports on a Windows host.

Without flags it shows an interactive menu:
  1  USB Detailed: devices resolved through their USB controller
  2  Overview: COM ports, then USB devices with the COM port they expose
  3  Exit

Examples:
  findport
  findport --report overview --usb-ids
  findport --port-source auto --save-config
  findport --tui`,

		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.report, "report", "", "Run one report and exit (detailed|overview)")
	f.BoolVar(&flags.tui, "tui", false, "Use the full-screen interface")
	f.StringVar(&flags.portSource, "port-source", config.DefaultPortSource, "Where to read COM port names (enumerator|registry|auto)")
	f.BoolVar(&flags.usbIDs, "usb-ids", false, "Print VID:PID and serial number lines in the overview")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output on stderr")
	f.StringVar(&flags.configPath, "config", "", "Additional config file layered over the global one")
	f.BoolVar(&flags.saveConfig, "save-config", false, "Write the effective settings to the global config file and exit")

	return cmd
}

// Execute runs the command. Only usage errors reach this point; device and
// report failures are printed by the reports themselves.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, env Environment, flags *rootFlags) error {
	out := env.Stdout

	if !env.IsSupported() {
		fmt.Fprintln(out, UnsupportedMessage)
		return nil
	}

	cfg := config.Load(flags.configPath)
	applyFlags(cmd, flags, &cfg)
	logf := verboseLogger(env.Stderr, flags.verbose)
	logf("config: %+v", cfg)

	source, err := serial.ParseSource(cfg.PortSource)
	if err != nil {
		return err
	}

	var reportKey int
	if flags.report != "" {
		if reportKey, err = parseReport(flags.report); err != nil {
			return err
		}
	}

	if flags.saveConfig {
		return saveConfig(out, cfg)
	}

	renderer := lipgloss.NewRenderer(out)
	if cfg.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	opts := report.Options{
		Styles:     ui.NewStyles(renderer),
		ShowUSBIDs: cfg.ShowUSBIDs,
	}

	devices := device.NewService(env.Backend(), device.WithLogger(logf))
	runner := menu.NewRunner(devices, env.Ports(source), opts)
	runner.Logf = logf

	switch {
	case reportKey != 0:
		runner.RunChoice(reportKey, out)
		return nil
	case cfg.TUI:
		return app.Run(runner, env.Stdin, out)
	}

	if err := runner.Run(env.Stdin, out); err != nil {
		logf("reading input: %v", err)
	}
	return nil
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("port-source") {
		cfg.PortSource = flags.portSource
	}
	if changed("usb-ids") {
		cfg.ShowUSBIDs = flags.usbIDs
	}
	if changed("no-color") {
		cfg.NoColor = flags.noColor
	}
	if changed("tui") {
		cfg.TUI = flags.tui
	}
}

// saveConfig writes the merged config and flags to the global config file.
func saveConfig(out io.Writer, cfg config.Config) error {
	path, err := config.GlobalPath()
	if err != nil {
		return fmt.Errorf("locating config: %w", err)
	}
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(out, "Saved config to %s\n", path)
	return nil
}

func parseReport(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "detailed", "1":
		return menu.KeyDetailed, nil
	case "overview", "2":
		return menu.KeyOverview, nil
	}
	return 0, fmt.Errorf("invalid report %q (valid: detailed, overview)", name)
}

// verboseLogger returns a printf-style logger that writes "[verbose]" lines
// to w when enabled and discards otherwise.
func verboseLogger(w io.Writer, enabled bool) func(format string, args ...any) {
	if !enabled || w == nil {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(w, "[verbose] "+format+"\n", args...)
	}
}
