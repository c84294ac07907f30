// Package rowio moves caller records between files and the enrichment
// pipeline: CSV and JSONL parsing on the way in, CSV/JSONL rendering on
// the way out, and a bounded-concurrency Enricher that pushes batches
// through a pipeline and into a store.
package rowio

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag"
	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
)

// ReadCSV parses header-driven CSV into records. The first line names
// the fields; every cell value stays a string. Ragged rows make the
// whole read fail with ErrInvalidInput.
func ReadCSV(r io.Reader) ([]autotag.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing csv header", internalerr.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", internalerr.ErrInvalidInput, err)
	}

	var recs []autotag.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read csv row: %v", internalerr.ErrInvalidInput, err)
		}
		rec := make(autotag.Record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// WriteCSV renders records as CSV with the given column order. Missing
// fields become empty cells; non-string values render as JSON so
// structured fields like ai_entities survive the trip.
func WriteCSV(w io.Writer, recs []autotag.Record, columns []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(columns))
	for _, rec := range recs {
		for i, name := range columns {
			row[i] = cell(rec[name])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// cell renders one field value for CSV output.
func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64, int, int64, bool:
		return fmt.Sprintf("%v", v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// ReadJSONL loads records from a JSONL file. Malformed lines are
// skipped with a warning; a file that yields no valid records at all is
// an error.
func ReadJSONL(path string) ([]autotag.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var recs []autotag.Record
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec autotag.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			slog.Warn("skipping malformed jsonl line", "path", path, "line", i+1, "error", err)
			continue
		}
		// A bare "null" line unmarshals cleanly into a nil map, which
		// the pipeline cannot write into.
		if rec == nil {
			slog.Warn("skipping null jsonl line", "path", path, "line", i+1)
			continue
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no valid records in %s", internalerr.ErrInvalidInput, path)
	}
	return recs, nil
}

// WriteJSONL writes records to a JSONL file, one JSON object per line.
func WriteJSONL(path string, recs []autotag.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}
