package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/logsift/logsift/internal/cli"
	"github.com/logsift/logsift/internal/config"
)

const quickStart = `logsift - filter and highlight log lines

Usage:
  logsift [OPTIONS...] [FILE]

Common options:
  -f NUM    Print the first NUM lines
  -l NUM    Print the last NUM lines
  -t        Keep lines containing an HH:MM:SS timestamp (highlighted)
  -i        Keep lines containing an IPv4 address (highlighted)
  -I        Keep lines containing an IPv6 address (highlighted)

If FILE is omitted, standard input is used instead.
Run 'logsift --help' for the full option list.
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// A load failure only costs the defaults; the warning waits until
	// flags are parsed so --quiet can suppress it.
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = config.Default()
	}

	var c cli.CLI

	ctx := kong.Parse(&c,
		kong.Name("logsift"),
		kong.Description("Prints the lines of a log file that match the criterion specified by OPTIONS.\n\nIf FILE is omitted, standard input is used instead."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	globals := cli.NewGlobals(&c, cfg)
	globals.SetupColor()

	if loadErr != nil {
		globals.Warn("failed to load config: %v", loadErr)
	}

	if err := ctx.Run(globals); err != nil {
		os.Exit(1)
	}
}
