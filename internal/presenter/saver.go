package presenter

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/Phasilva-dev/IC-Pedro/internal/routine"
)

// SaveRoutinesCSV writes one row per routine: wake_up, sleep, then a
// leave/return column pair per outing.
func SaveRoutinesCSV(routines []routine.Routine, filename string) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	events := 0
	for _, r := range routines {
		events = max(events, len(r.Events))
	}
	header := []string{"day", "wake_up", "sleep"}
	for i := range events {
		n := strconv.Itoa(i + 1)
		header = append(header, "leave_"+n, "return_"+n)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Write each routine; missing outings stay empty
	for day, r := range routines {
		record := make([]string, len(header))
		record[0] = strconv.Itoa(day)
		record[1] = strconv.FormatInt(int64(r.WakeUp), 10)
		record[2] = strconv.FormatInt(int64(r.Sleep), 10)
		for i, ev := range r.Events {
			record[3+2*i] = strconv.FormatInt(int64(ev.Leave), 10)
			record[4+2*i] = strconv.FormatInt(int64(ev.Return), 10)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
