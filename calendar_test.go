package splitter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/eric-pierce/ics-splitter/fixtures"
	"github.com/stretchr/testify/require"
)

func eventFromICS(t *testing.T, properties ...string) *ics.VEvent {
	t.Helper()
	var doc strings.Builder
	doc.WriteString("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nBEGIN:VEVENT\r\nUID:test@example.com\r\n")
	for _, property := range properties {
		doc.WriteString(property)
		doc.WriteString("\r\n")
	}
	doc.WriteString("END:VEVENT\r\nEND:VCALENDAR\r\n")

	cal, err := ics.ParseCalendar(strings.NewReader(doc.String()))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)
	return cal.Events()[0]
}

func TestEventDate(t *testing.T) {
	for name, test := range map[string]struct {
		properties []string
		expected   time.Time
	}{
		"utc_datetime": {
			properties: []string{"DTSTART:20240512T090000Z"},
			expected:   time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC),
		},
		"naive_datetime": {
			properties: []string{"DTSTART:20240512T090000"},
			expected:   time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC),
		},
		"zoned_datetime_keeps_wall_clock": {
			properties: []string{"DTSTART;TZID=Australia/Sydney:20240722T193000"},
			expected:   time.Date(2024, 7, 22, 19, 30, 0, 0, time.UTC),
		},
		"date_only_parameter": {
			properties: []string{"DTSTART;VALUE=DATE:20241106"},
			expected:   time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC),
		},
		"date_only_value": {
			properties: []string{"DTSTART:20241106"},
			expected:   time.Date(2024, 11, 6, 0, 0, 0, 0, time.UTC),
		},
		"dtstart_beats_dtstamp": {
			properties: []string{"DTSTAMP:20240101T083000Z", "DTSTART:20240512T090000Z"},
			expected:   time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC),
		},
		"dtstamp_beats_created": {
			properties: []string{"CREATED:20230101T000000Z", "DTSTAMP:20240101T083000Z"},
			expected:   time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
		},
		"created_only": {
			properties: []string{"CREATED:20230101T120000Z"},
			expected:   time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		"no_date_properties": {
			properties: []string{"SUMMARY:floating"},
			expected:   time.Time{},
		},
		"unparseable_value": {
			properties: []string{"DTSTART:sometime"},
			expected:   time.Time{},
		},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.expected, eventDate(eventFromICS(t, test.properties...)))
		})
	}
}

func TestSortEventsStable(t *testing.T) {
	t.Parallel()

	doc := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n" +
		"BEGIN:VEVENT\r\nUID:b\r\nDTSTART:20240512T090000Z\r\nEND:VEVENT\r\n" +
		"BEGIN:VEVENT\r\nUID:c\r\nDTSTART:20240512T090000Z\r\nEND:VEVENT\r\n" +
		"BEGIN:VEVENT\r\nUID:a\r\nDTSTART:20240101T090000Z\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	cal, err := ics.ParseCalendar(strings.NewReader(doc))
	require.NoError(t, err)

	events := cal.Events()
	sortEvents(events)

	var order []string
	for _, event := range events {
		order = append(order, event.GetProperty(ics.ComponentPropertyUniqueId).Value)
	}
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestCarriedProperties(t *testing.T) {
	for name, test := range map[string]struct {
		input    []byte
		expected []string
	}{
		"all_four":       {fixtures.CalExample, []string{"VERSION", "PRODID", "CALSCALE", "METHOD"}},
		"version_prodid": {fixtures.CalTimezones, []string{"VERSION", "PRODID"}},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cal, err := ics.ParseCalendar(bytes.NewReader(test.input))
			require.NoError(t, err)

			var tokens []string
			for _, prop := range carriedProperties(cal) {
				tokens = append(tokens, prop.IANAToken)
			}
			require.Equal(t, test.expected, tokens)
		})
	}
}
