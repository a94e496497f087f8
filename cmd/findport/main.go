// Command findport shows which USB device is behind which serial port on a
// Windows host.
package main

import (
	"github.com/buckleypaul/findport/internal/cli"
)

// Set via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewRootCommand(cli.DefaultEnvironment()))
}
