package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine converts one raw line from a yearly entry into a Record. The year
// is derived from the entry name by the caller and attached here; entry and
// lineNumber only feed error context.
func ParseLine(entry string, lineNumber, year int, line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Record{}, &MalformedRecordError{
			Entry:  entry,
			Line:   lineNumber,
			Reason: fmt.Sprintf("expected 3 comma-separated fields, got %d", len(fields)),
		}
	}

	name := fields[0]
	if name == "" {
		return Record{}, &MalformedRecordError{Entry: entry, Line: lineNumber, Reason: "empty name field"}
	}

	gender, err := ParseGender(fields[1])
	if err != nil {
		return Record{}, &MalformedRecordError{Entry: entry, Line: lineNumber, Reason: err.Error()}
	}

	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, &MalformedRecordError{
			Entry:  entry,
			Line:   lineNumber,
			Reason: fmt.Sprintf("count %q is not an integer", fields[2]),
		}
	}
	if count < 0 {
		return Record{}, &MalformedRecordError{
			Entry:  entry,
			Line:   lineNumber,
			Reason: fmt.Sprintf("count must be non-negative, got %d", count),
		}
	}

	return Record{Year: year, Name: name, Gender: gender, Count: count}, nil
}
