// Package ingest holds the leaf steps of the CSV intake pipeline: record
// parsing, row validation and skill/experience extraction. Nothing here
// touches storage.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFormat marks input that is not parseable as CSV at all. It aborts a
// whole ingestion run; anything row-shaped but invalid is left for the
// validator instead.
var ErrFormat = errors.New("invalid CSV format")

// Record is one data row keyed by header name. Ragged rows yield records
// with absent keys rather than an error.
type Record map[string]string

// Parse reads header-first CSV into ordered records. Cell values are
// trimmed, quoted fields may contain commas, and empty lines are skipped.
// Rows shorter than the header simply omit the trailing keys; extra cells
// beyond the header are dropped.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]Record, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i >= len(row) {
				break
			}
			rec[name] = strings.TrimSpace(row[i])
		}
		records = append(records, rec)
	}

	return records, nil
}
