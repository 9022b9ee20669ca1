package main

import (
	"flag"
	"os"

	"github.com/Phasilva-dev/IC-Pedro/internal/config"
	"github.com/Phasilva-dev/IC-Pedro/internal/repl"
	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("distsampler")

func main() {
	cfg, err := config.Parse("distsampler", os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.SetupLogging(os.Stderr); err != nil {
		log.Fatal(err)
	}
	log.Infof("seed %d", cfg.Seed)

	s := &repl.Session{
		In:       os.Stdin,
		Out:      os.Stdout,
		Src:      dist.NewSource(cfg.Seed),
		ExitWord: cfg.ExitWord,
	}
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}
