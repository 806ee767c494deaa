package splitter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/sirupsen/logrus"
)

// DefaultMaxSizeMB is the output size ceiling used when no MaxSize option
// is given.
const DefaultMaxSizeMB = 1.0

// sizeMargin shrinks the configured limit so that probing one event past
// the ceiling cannot push an already-written part over it.
const sizeMargin = 0.95

// Splitter splits one calendar file into size-bounded parts.
type Splitter struct {
	maxSizeMB float64
	log       logrus.FieldLogger
}

func New(opts ...Opt) *Splitter {
	s := &Splitter{
		maxSizeMB: DefaultMaxSizeMB,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Part describes one written output file.
type Part struct {
	Name   string
	Events int
	Size   int
}

// SizeMB is the part's size in megabytes, as reported to the user.
func (p Part) SizeMB() float64 {
	return float64(p.Size) / (1024 * 1024)
}

// Split reads the calendar at inputPath, sorts its events by date, and
// writes them to inputPath-derived part files, each kept under the
// configured size limit. Parts are returned in write order. A calendar with
// no events writes nothing and returns an empty part list.
//
// Only VEVENT components are redistributed; any other components in the
// input (VTIMEZONE, VTODO, ...) are parsed but not re-emitted. An event
// whose serialized form alone exceeds the limit is written to its own,
// oversized, part rather than rejected.
//
// Each appended event re-serializes the whole batch to measure it, so the
// bytes serialized per part grow quadratically with the batch length. Fine
// for calendar-sized inputs, the whole document is held in memory anyway.
//
// On a write failure the parts already written are returned along with the
// error; they are left on disk.
func (s *Splitter) Split(inputPath string) ([]Part, error) {
	raw, err := os.ReadFile(inputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, InputNotFoundError{Path: inputPath}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", inputPath, err)
	}

	upstream, err := ics.ParseCalendar(bytes.NewReader(raw))
	if err != nil {
		return nil, MalformedCalendarError{Path: inputPath, Err: err}
	}

	events := upstream.Events()
	if len(events) == 0 {
		s.log.WithField("input", inputPath).Info("No events found")
		return []Part{}, nil
	}

	sortEvents(events)
	properties := carriedProperties(upstream)

	effectiveLimit := int(s.maxSizeMB * 1024 * 1024 * sizeMargin)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)

	s.log.WithFields(logrus.Fields{
		"input":  inputPath,
		"events": len(events),
		"limit":  effectiveLimit,
	}).Debug("Splitting calendar")

	var (
		parts   []Part
		batch   []*ics.VEvent
		counter = 1
	)
	for i, event := range events {
		batch = append(batch, event)
		serialized := newPartCalendar(properties, batch).Serialize()

		if len(serialized) < effectiveLimit && i != len(events)-1 {
			continue
		}

		// The batch outgrew the limit: put the last event back unless it
		// is alone, a single oversized event ships as-is.
		overflow := len(serialized) >= effectiveLimit && len(batch) > 1
		if overflow {
			batch = batch[:len(batch)-1]
			serialized = newPartCalendar(properties, batch).Serialize()
		}

		part, err := s.writePart(base, ext, counter, len(batch), serialized)
		if err != nil {
			return parts, err
		}
		parts = append(parts, part)
		counter++

		if overflow {
			batch = []*ics.VEvent{event}
		} else {
			batch = nil
		}
	}

	if len(batch) > 0 {
		serialized := newPartCalendar(properties, batch).Serialize()
		part, err := s.writePart(base, ext, counter, len(batch), serialized)
		if err != nil {
			return parts, err
		}
		parts = append(parts, part)
	}

	return parts, nil
}

func (s *Splitter) writePart(base, ext string, counter, events int, serialized string) (Part, error) {
	name := fmt.Sprintf("%s_part%d%s", base, counter, ext)
	if err := os.WriteFile(name, []byte(serialized), 0o644); err != nil {
		return Part{}, WriteError{Path: name, Err: err}
	}

	part := Part{Name: name, Events: events, Size: len(serialized)}
	s.log.WithFields(logrus.Fields{
		"file":   part.Name,
		"events": part.Events,
		"bytes":  part.Size,
	}).Debug("Wrote part")
	return part, nil
}
