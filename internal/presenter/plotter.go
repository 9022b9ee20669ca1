package presenter

import (
	"path/filepath"

	"github.com/Phasilva-dev/IC-Pedro/internal/routine"
	"github.com/Phasilva-dev/IC-Pedro/pkg/histplotter"
)

// Column pulls one time series (e.g. every wake-up) out of routines as
// hours since midnight.
func Column(routines []routine.Routine, pick func(routine.Routine) int32) []float64 {
	hours := make([]float64, len(routines))
	for i, r := range routines {
		hours[i] = float64(pick(r)) / 3600
	}
	return hours
}

// GenerateHistograms renders the wake-up and sleep histograms of routines
// into outputDir.
func GenerateHistograms(outputDir string, routines []routine.Routine, bins int) error {
	wake := Column(routines, func(r routine.Routine) int32 { return r.WakeUp })
	if err := histplotter.MakeHistogramPlot(wake, bins, "Wake-up time", filepath.Join(outputDir, "wake_up.pdf")); err != nil {
		return err
	}
	sleep := Column(routines, func(r routine.Routine) int32 { return r.Sleep })
	return histplotter.MakeHistogramPlot(sleep, bins, "Sleep time", filepath.Join(outputDir, "sleep.pdf"))
}
