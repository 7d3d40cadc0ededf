package cli

import (
	"fmt"

	"github.com/logsift/logsift/internal/config"
)

// ConfigCmd shows the effective configuration
type ConfigCmd struct{}

// Run executes the config command
func (c *ConfigCmd) Run(globals *Globals) error {
	path := config.File()
	if path == "" {
		fmt.Fprintln(globals.Stdout, "Config file: (none found)")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	fmt.Fprintf(globals.Stdout, "color:   %s\n", cfg.Color)
	fmt.Fprintf(globals.Stdout, "quiet:   %t\n", cfg.Quiet)
	fmt.Fprintf(globals.Stdout, "verbose: %t\n", cfg.Verbose)

	return nil
}
