package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/logsift/logsift/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI is the root command structure for logsift
type CLI struct {
	// Global flags
	Color   string `enum:"auto,always,never" default:"auto" help:"When to apply colors and styles (auto, always, never)"`
	Quiet   bool   `short:"q" help:"Suppress warnings (only emit output lines)"`
	Verbose bool   `short:"v" help:"Show debug output (compiled patterns, line counts)"`

	// Commands
	Filter  FilterCmd  `cmd:"" default:"withargs" help:"Print the lines of a log file that match the enabled filters"`
	Version VersionCmd `cmd:"" help:"Show version information"`
	Config  ConfigCmd  `cmd:"" help:"Show effective configuration"`
}

// Globals holds shared state for all commands
type Globals struct {
	Color   string
	Quiet   bool
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Log     *zap.Logger
	Config  *config.Config
}

// NewGlobals creates a Globals instance from CLI flags with config
// fallbacks applied. Flags always win over config values.
func NewGlobals(cli *CLI, cfg *config.Config) *Globals {
	g := &Globals{
		Color:   cli.Color,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
	}

	if cfg != nil {
		if cli.Color == "auto" && cfg.Color != "" {
			g.Color = cfg.Color
		}
		if !cli.Quiet && cfg.Quiet {
			g.Quiet = cfg.Quiet
		}
		if !cli.Verbose && cfg.Verbose {
			g.Verbose = cfg.Verbose
		}
	}

	g.Log = newLogger(g.Verbose)

	return g
}

// newLogger builds the diagnostic logger. Unless verbose mode is on it
// discards everything.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	return zap.New(core)
}

// Warn prints a warning to stderr unless quiet mode is on.
func (g *Globals) Warn(format string, args ...interface{}) {
	if g.Quiet {
		return
	}
	fmt.Fprintf(g.Stderr, "Warning: "+format+"\n", args...)
}

// SetupColor forces or suppresses the styling profile according to the
// color mode. In auto mode styling is dropped when stdout is not a
// terminal, so piped output stays clean.
func (g *Globals) SetupColor() {
	switch g.Color {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		if f, ok := g.Stdout.(*os.File); ok && !isatty.IsTerminal(f.Fd()) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	_, err := io.WriteString(globals.Stdout, "logsift version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
