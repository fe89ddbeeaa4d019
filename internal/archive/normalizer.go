// Package archive flattens the SSA names.zip archive into the ordered record
// sequence the rest of the pipeline consumes. It operates purely on in-memory
// bytes: no network or filesystem access, so tests feed it synthetic archives.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

const (
	// entrySuffix selects the per-year data files; everything else in the
	// archive (the bundled readme PDF) is skipped.
	entrySuffix = ".txt"

	// Entry names encode the year at a fixed offset: "yob1880.txt" -> 1880.
	yearOffset = 3
	yearDigits = 4
)

// Normalize extracts every qualifying entry of a zip-compatible archive and
// parses it into the flat record sequence, attaching the year encoded in each
// entry's name. Output order is archive entry order, then line order within
// each entry.
//
// Parsing is fail-fast: the first undecodable entry or malformed line aborts
// with a *domain.DecodingError or *domain.MalformedRecordError carrying the
// entry name and line number. An archive with no qualifying entries fails
// with domain.ErrEmptyArchive.
func Normalize(archiveBytes []byte) ([]domain.Record, error) {
	reader, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var records []domain.Record
	entries := 0

	for _, file := range reader.File {
		if !strings.HasSuffix(file.Name, entrySuffix) {
			continue
		}
		entries++

		entryRecords, err := normalizeEntry(file)
		if err != nil {
			return nil, err
		}
		records = append(records, entryRecords...)
	}

	if entries == 0 {
		return nil, domain.ErrEmptyArchive
	}
	return records, nil
}

// normalizeEntry decodes one yearly entry and parses every line.
func normalizeEntry(file *zip.File) ([]domain.Record, error) {
	year, err := yearFromEntryName(file.Name)
	if err != nil {
		return nil, err
	}

	data, err := readEntry(file)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", file.Name, err)
	}
	if !utf8.Valid(data) {
		return nil, &domain.DecodingError{Entry: file.Name}
	}

	lines := splitLines(string(data))
	records := make([]domain.Record, 0, len(lines))
	for i, line := range lines {
		rec, err := domain.ParseLine(file.Name, i+1, year, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// yearFromEntryName extracts the 4-digit year at the fixed offset of the
// entry's base name, e.g. "yob1880.txt" -> 1880.
func yearFromEntryName(name string) (int, error) {
	base := path.Base(name)
	if len(base) < yearOffset+yearDigits {
		return 0, &domain.MalformedRecordError{
			Entry:  name,
			Reason: "entry name too short to encode a 4-digit year",
		}
	}

	year, err := strconv.Atoi(base[yearOffset : yearOffset+yearDigits])
	if err != nil {
		return 0, &domain.MalformedRecordError{
			Entry:  name,
			Reason: fmt.Sprintf("entry name does not encode a 4-digit year at offset %d", yearOffset),
		}
	}
	return year, nil
}

func readEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// splitLines splits entry text into lines, tolerating CRLF endings and a
// trailing newline. Interior blank lines are kept so they fail parsing rather
// than being silently dropped.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
