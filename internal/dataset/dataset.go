// Package dataset reads docking score tables and writes the filtered results.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hitmer-tools/dockscore/internal/score"
)

// Record is one molecule row. Z is attached once during standardization and
// not mutated afterwards. Identity is positional; duplicate IDs are allowed.
type Record struct {
	ID    string
	Score float64
	Z     float64
}

// Load reads a header-keyed CSV and extracts (identifier, score) per row.
// Rows whose score field fails numeric parsing are dropped silently; the
// second return is the number of dropped rows. Input order is preserved.
func Load(path, idCol, scoreCol string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	idIdx, scoreIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case idCol:
			idIdx = i
		case scoreCol:
			scoreIdx = i
		}
	}
	if idIdx < 0 {
		return nil, 0, fmt.Errorf("missing column %q in %s", idCol, path)
	}
	if scoreIdx < 0 {
		return nil, 0, fmt.Errorf("missing column %q in %s", scoreCol, path)
	}

	var recs []Record
	dropped := 0
	for row := 1; ; row++ {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, fmt.Errorf("read row %d: %w", row, err)
		}
		if idIdx >= len(rec) || scoreIdx >= len(rec) {
			dropped++
			continue
		}
		x, ok := score.Parse(rec[scoreIdx])
		if !ok {
			dropped++
			continue
		}
		recs = append(recs, Record{ID: rec[idIdx], Score: x})
	}
	return recs, dropped, nil
}

// WriteFiltered writes the filtered rows as a fresh three-column CSV. The
// z-score column is formatted to six decimal places, matching the report
// table. Writing an empty slice yields a header-only file.
func WriteFiltered(path, idCol, scoreCol string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{idCol, scoreCol, "Z Score"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range recs {
		row := []string{
			rec.ID,
			strconv.FormatFloat(rec.Score, 'g', -1, 64),
			fmt.Sprintf("%.6f", rec.Z),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// LastScore re-reads a written filtered table and returns the identifier and
// raw score of its last row. The score plot uses this value for its marker so
// the annotation always reflects the file on disk, not in-memory state.
func LastScore(path, scoreCol string) (string, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open filtered table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return "", 0, fmt.Errorf("read header: %w", err)
	}
	scoreIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == scoreCol {
			scoreIdx = i
		}
	}
	if scoreIdx < 0 {
		return "", 0, fmt.Errorf("missing column %q in %s", scoreCol, path)
	}

	var last []string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", 0, fmt.Errorf("read filtered table: %w", err)
		}
		last = rec
	}
	if last == nil {
		return "", 0, fmt.Errorf("filtered table %s has no data rows", path)
	}
	if scoreIdx >= len(last) {
		return "", 0, fmt.Errorf("last row of %s is missing the score field", path)
	}
	x, err := strconv.ParseFloat(last[scoreIdx], 64)
	if err != nil {
		return "", 0, fmt.Errorf("parse last score: %w", err)
	}
	return last[0], x, nil
}
