package presenter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts values falling into fixed bins.
type Histogram struct {
	Bins   []float64 // bin edges
	Counts []int     // values per bin
}

// NewHistogram splits [low, high) into n equal bins. n must be at least 1.
func NewHistogram(low, high float64, n int) *Histogram {
	return &Histogram{
		Bins:   floats.Span(make([]float64, n+1), low, high),
		Counts: make([]int, n),
	}
}

// Add counts the values inside the histogram's range and ignores the rest.
func (h *Histogram) Add(values []float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	binIndex := 0
	for _, v := range sorted {
		for binIndex < len(h.Counts)-1 && v >= h.Bins[binIndex+1] {
			binIndex++
		}
		if v >= h.Bins[binIndex] && v < h.Bins[binIndex+1] {
			h.Counts[binIndex]++
		}
	}
}

// Total is the number of counted values.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Print writes one line per bin with a bar scaled to width characters.
func (h *Histogram) Print(w io.Writer, width int) {
	maxCount := 0
	for _, c := range h.Counts {
		maxCount = max(maxCount, c)
	}
	for i, c := range h.Counts {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("█", c*width/maxCount)
		}
		fmt.Fprintf(w, "[%.2f - %.2f): %s %d\n", h.Bins[i], h.Bins[i+1], bar, c)
	}
}

// Summary holds the sample moments of a set of values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the summary of values; an empty slice gives a zero
// Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.2f std=%.2f min=%.2f max=%.2f", s.N, s.Mean, s.StdDev, s.Min, s.Max)
}
