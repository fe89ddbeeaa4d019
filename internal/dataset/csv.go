// Package dataset reads and writes the flat intermediate table, data.csv.
//
// The file format is an external contract other tools depend on: UTF-8,
// comma-delimited, header exactly "year,name,gender,count", one record per
// line, no quoting. Reading back a written table reproduces the identical
// record sequence.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

var header = []string{"year", "name", "gender", "count"}

// Write emits the flat table with its header to w, preserving record order.
func Write(w io.Writer, records []domain.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := make([]string, 4)
	for _, rec := range records {
		row[0] = strconv.Itoa(rec.Year)
		row[1] = rec.Name
		row[2] = string(rec.Gender)
		row[3] = strconv.Itoa(rec.Count)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses a flat table back into records, validating the header and every
// field. name is used only for error context. Line numbers count the header
// as line 1.
func Read(name string, r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field-count errors carry our context instead

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", name, err)
	}
	if !equalHeader(head) {
		return nil, &domain.MalformedRecordError{
			Entry:  name,
			Line:   1,
			Reason: fmt.Sprintf("header must be year,name,gender,count, got %v", head),
		}
	}

	var records []domain.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		rec, err := parseRow(name, line, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteFile writes the flat table to path, creating parent directories.
func WriteFile(path string, records []domain.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the flat table from path.
func ReadFile(path string) ([]domain.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Read(filepath.Base(path), f)
}

func equalHeader(head []string) bool {
	if len(head) != len(header) {
		return false
	}
	for i := range header {
		if head[i] != header[i] {
			return false
		}
	}
	return true
}

func parseRow(name string, line int, row []string) (domain.Record, error) {
	if len(row) != 4 {
		return domain.Record{}, &domain.MalformedRecordError{
			Entry:  name,
			Line:   line,
			Reason: fmt.Sprintf("expected 4 fields, got %d", len(row)),
		}
	}

	year, err := strconv.Atoi(row[0])
	if err != nil {
		return domain.Record{}, &domain.MalformedRecordError{
			Entry:  name,
			Line:   line,
			Reason: fmt.Sprintf("year %q is not an integer", row[0]),
		}
	}

	gender, err := domain.ParseGender(row[2])
	if err != nil {
		return domain.Record{}, &domain.MalformedRecordError{Entry: name, Line: line, Reason: err.Error()}
	}

	count, err := strconv.Atoi(row[3])
	if err != nil || count < 0 {
		return domain.Record{}, &domain.MalformedRecordError{
			Entry:  name,
			Line:   line,
			Reason: fmt.Sprintf("count %q is not a non-negative integer", row[3]),
		}
	}

	return domain.Record{Year: year, Name: row[1], Gender: gender, Count: count}, nil
}
