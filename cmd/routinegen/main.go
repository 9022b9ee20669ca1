package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Phasilva-dev/IC-Pedro/internal/config"
	"github.com/Phasilva-dev/IC-Pedro/internal/presenter"
	"github.com/Phasilva-dev/IC-Pedro/internal/routine"
	"github.com/Phasilva-dev/IC-Pedro/pkg/dist"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("routinegen")

func main() {
	// Load configuration
	cfg, err := config.Parse("routinegen", os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := cfg.SetupLogging(os.Stderr); err != nil {
		log.Fatal(err)
	}
	if cfg.Bins < 1 {
		log.Fatalf("bins must be at least 1, got %d", cfg.Bins)
	}

	profile, err := routine.LoadProfile(cfg.Profile)
	if err != nil {
		log.Fatal(err)
	}
	gen, err := routine.NewGenerator(profile)
	if err != nil {
		log.Fatal(err)
	}

	// Draw every routine from one seeded source
	routines, err := gen.Generate(cfg.Days, dist.NewSource(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("generated %d routines with seed %d", len(routines), cfg.Seed)

	// Save results
	csvPath := filepath.Join(cfg.OutputDir, "routines.csv")
	if err := presenter.SaveRoutinesCSV(routines, csvPath); err != nil {
		log.Fatalf("saving %s: %v", csvPath, err)
	}
	if len(routines) > 0 {
		if err := presenter.GenerateHistograms(cfg.OutputDir, routines, cfg.Bins); err != nil {
			log.Fatalf("plotting histograms: %v", err)
		}
	}

	// Print final results
	for _, col := range []struct {
		title string
		pick  func(routine.Routine) int32
	}{
		{"Wake-up (h)", func(r routine.Routine) int32 { return r.WakeUp }},
		{"Sleep (h)", func(r routine.Routine) int32 { return r.Sleep }},
	} {
		hours := presenter.Column(routines, col.pick)
		hist := presenter.NewHistogram(0, 24, cfg.Bins)
		hist.Add(hours)

		fmt.Printf("\n%s: %s\n", col.title, presenter.Summarize(hours))
		hist.Print(os.Stdout, 50)
	}
}
