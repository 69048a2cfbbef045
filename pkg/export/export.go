package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"time"

	"github.com/kilianp07/rsviz/core/gantt"
)

// WriteJSON writes the flattened chart rows to w in JSON format.
func WriteJSON(w io.Writer, rows []gantt.Row) error {
	enc := json.NewEncoder(w)
	return enc.Encode(rows)
}

// WriteCSV writes the flattened chart rows to w in CSV format with a header.
func WriteCSV(w io.Writer, rows []gantt.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task", "category", "start", "finish"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Task,
			r.Category,
			r.Start.Format(time.RFC3339),
			r.Finish.Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
