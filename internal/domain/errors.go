package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyArchive is returned when the source archive contains no qualifying
// name entries at all.
var ErrEmptyArchive = errors.New("archive contains no name entries")

// FetchError reports a failed dataset download. StatusCode is zero when the
// request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodingError reports an archive entry whose bytes are not valid UTF-8 text.
type DecodingError struct {
	Entry string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("entry %s: not valid UTF-8 text", e.Entry)
}

// MalformedRecordError reports a line that does not parse into a Record.
// Line is 1-based within the entry; zero means the entry itself is malformed
// (e.g. its name does not encode a year).
type MalformedRecordError struct {
	Entry  string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("entry %s: %s", e.Entry, e.Reason)
	}
	return fmt.Sprintf("entry %s line %d: %s", e.Entry, e.Line, e.Reason)
}
