package config

import (
	"flag"
	"io"

	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
)

type Config struct {
	Seed      uint64
	ExitWord  string
	LogLevel  string
	Profile   string
	OutputDir string
	Days      int
	Bins      int
}

// Parse reads the command line flags shared by the binaries.
// Parse errors are returned rather than exiting so callers can report them.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	// define flags
	fs.Uint64Var(&cfg.Seed, "seed", dist.DefaultSeed, "seed of the PCG random source")
	fs.StringVar(&cfg.ExitWord, "exit-word", "sair", "word that ends the interactive loop")
	fs.StringVar(&cfg.LogLevel, "log-level", "WARNING", "log level (DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL)")
	fs.StringVar(&cfg.Profile, "profile", "profile.yaml", "routine profile file")
	fs.StringVar(&cfg.OutputDir, "output-dir", "./", "output directory")
	fs.IntVar(&cfg.Days, "days", 1000, "number of routines to generate")
	fs.IntVar(&cfg.Bins, "bins", 24, "number of histogram bins")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
