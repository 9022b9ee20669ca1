package presenter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Phasilva-dev/IC-Pedro/internal/routine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram(0, 10, 5)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, h.Bins)

	h.Add([]float64{9.9, 0, 1.99, 2, 5, -1, 10, 7})
	assert.Equal(t, []int{2, 1, 1, 1, 1}, h.Counts)
	assert.Equal(t, 6, h.Total())

	var buf bytes.Buffer
	h.Print(&buf, 10)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "[0.00 - 2.00): ██████████ 2", lines[0])
	assert.Equal(t, "[8.00 - 10.00): █████ 1", lines[4])
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 5, s.Mean, 1e-12)
	assert.InDelta(t, 2.138, s.StdDev, 1e-3)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestColumn(t *testing.T) {
	routines := []routine.Routine{{WakeUp: 3600, Sleep: 82800}, {WakeUp: 5400, Sleep: 0}}
	assert.Equal(t, []float64{1, 1.5}, Column(routines, func(r routine.Routine) int32 { return r.WakeUp }))
}

func TestSaveRoutinesCSV(t *testing.T) {
	routines := []routine.Routine{
		{WakeUp: 25200, Sleep: 82800, Events: []routine.Event{{Leave: 28800, Return: 61200}}},
		{WakeUp: 26000, Sleep: 83000},
	}
	filename := filepath.Join(t.TempDir(), "routines.csv")
	require.NoError(t, SaveRoutinesCSV(routines, filename))

	f, err := os.Open(filename)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"day", "wake_up", "sleep", "leave_1", "return_1"},
		{"0", "25200", "82800", "28800", "61200"},
		{"1", "26000", "83000", "", ""},
	}, records)
}

func TestGenerateHistograms(t *testing.T) {
	dir := t.TempDir()
	routines := []routine.Routine{{WakeUp: 25200, Sleep: 82800}, {WakeUp: 27000, Sleep: 84000}}
	require.NoError(t, GenerateHistograms(dir, routines, 24))

	for _, name := range []string{"wake_up.pdf", "sleep.pdf"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
