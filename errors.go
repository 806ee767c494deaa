package splitter

import (
	"fmt"
)

// InputNotFoundError is returned when the input path does not exist. The
// CLI checks existence up front, but Split tolerates being handed an
// unchecked path.
type InputNotFoundError struct {
	Path string
}

func (e InputNotFoundError) Error() string {
	return fmt.Sprintf("input file %q does not exist", e.Path)
}

// MalformedCalendarError is returned when the input bytes cannot be parsed
// as an iCalendar document. No output files are written.
type MalformedCalendarError struct {
	Path string
	Err  error
}

func (e MalformedCalendarError) Error() string {
	return fmt.Sprintf("error parsing calendar %q: %s", e.Path, e.Err)
}

func (e MalformedCalendarError) Unwrap() error {
	return e.Err
}

// WriteError is returned when an output part cannot be written. Parts
// already written stay on disk, the operation stops immediately.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("error writing %q: %s", e.Path, e.Err)
}

func (e WriteError) Unwrap() error {
	return e.Err
}
