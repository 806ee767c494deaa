package splitter

import (
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// replicatedProperties are the calendar-level properties copied into every
// part, in this order, when present in the source.
var replicatedProperties = []string{"VERSION", "PRODID", "CALSCALE", "METHOD"}

// datePriority is the property order used to derive an event's sort key.
// The first property present wins.
var datePriority = []ics.ComponentProperty{
	ics.ComponentPropertyDtStart,
	"DTSTAMP",
	"CREATED",
}

type dateKind int

const (
	dateAbsent dateKind = iota
	dateOnly
	dateTimeUTC
	dateTimeNaive
)

// dateValue is the parsed payload of a date-bearing property. The wall
// clock is always naive: offsets are stripped, not converted, so keys are
// only meaningful relative to each other.
type dateValue struct {
	kind dateKind
	wall time.Time
}

const (
	dateLayout     = "20060102"
	dateTimeLayout = "20060102T150405"
)

// parseDateProperty classifies a DTSTART/DTSTAMP/CREATED value. A value
// with a VALUE=DATE parameter or no time part is a pure date and combines
// with midnight. An unparseable value degrades to dateAbsent, the extractor
// must be total.
func parseDateProperty(p *ics.IANAProperty) dateValue {
	if p == nil || p.Value == "" {
		return dateValue{kind: dateAbsent}
	}

	value := p.Value
	if isDateOnly(p) {
		wall, err := time.Parse(dateLayout, value)
		if err != nil {
			return dateValue{kind: dateAbsent}
		}
		return dateValue{kind: dateOnly, wall: wall}
	}

	kind := dateTimeNaive
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z")
		kind = dateTimeUTC
	}
	wall, err := time.Parse(dateTimeLayout, value)
	if err != nil {
		return dateValue{kind: dateAbsent}
	}
	return dateValue{kind: kind, wall: wall}
}

func isDateOnly(p *ics.IANAProperty) bool {
	if values, ok := p.ICalParameters["VALUE"]; ok && len(values) > 0 && strings.EqualFold(values[0], "DATE") {
		return true
	}
	return !strings.Contains(p.Value, "T")
}

// eventDate derives the sort key for an event from the first of DTSTART,
// DTSTAMP, CREATED that is present. Events carrying none of the three sort
// first with the zero time.
func eventDate(event *ics.VEvent) time.Time {
	for _, name := range datePriority {
		prop := event.GetProperty(name)
		if prop == nil {
			continue
		}
		if date := parseDateProperty(prop); date.kind != dateAbsent {
			return date.wall
		}
		return time.Time{}
	}
	return time.Time{}
}

// sortEvents orders events by their date key. The sort is stable: events
// with equal keys keep their original relative order.
func sortEvents(events []*ics.VEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventDate(events[i]).Before(eventDate(events[j]))
	})
}

// carriedProperties extracts the calendar-level properties that every part
// replicates. Absent properties are omitted, not defaulted.
func carriedProperties(upstream *ics.Calendar) []ics.CalendarProperty {
	var carried []ics.CalendarProperty
	for _, name := range replicatedProperties {
		for _, prop := range upstream.CalendarProperties {
			if strings.EqualFold(prop.IANAToken, name) {
				carried = append(carried, prop)
				break
			}
		}
	}
	return carried
}

// newPartCalendar assembles a complete standalone calendar from the carried
// properties and an ordered batch of events. Events are shared with the
// source calendar, never copied or mutated.
func newPartCalendar(properties []ics.CalendarProperty, events []*ics.VEvent) *ics.Calendar {
	part := ics.NewCalendar()
	part.CalendarProperties = append([]ics.CalendarProperty(nil), properties...)
	for _, event := range events {
		part.AddVEvent(event)
	}
	return part
}
