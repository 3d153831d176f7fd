// Package config parses the adkdng command-line configuration.
package config

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

// Version is the CLI's reported version string.
const Version = "0.1.0"

// Config holds the parsed command-line configuration for the adkdng tool.
type Config struct {
	Path string `arg:"" help:"Archive file or directory to process." type:"path"`

	OutputDir string `short:"o" default:"." help:"Output directory for decrypted/encrypted files."`
	Debug     bool   `short:"d" help:"Enable debug logging."`
	DryRun    bool   `short:"n" help:"Perform a dry run without writing output files."`
	Test      bool   `short:"t" help:"Round-trip every archive under Path (other files are skipped) and report bytes saved or lost, writing nothing."`

	Version kong.VersionFlag `short:"v" help:"Show version information."`
}

// Parse parses os.Args into a Config, exiting the process on --help/--version
// or a usage error (kong's standard CLI behavior).
func Parse() *Config {
	cfg := &Config{}
	kong.Parse(cfg,
		kong.Name("adkdng"),
		kong.Description("Decode and encode ADK/DNG game archives."),
		kong.Vars{"version": Version},
	)
	return cfg
}

// NewLogger builds the zerolog logger used throughout the CLI layer. The
// core codec package never logs (see pkg/codec doc comment); only this
// ambient layer does.
func NewLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.NewConsoleWriter()).Level(level).With().Timestamp().Logger()
}
