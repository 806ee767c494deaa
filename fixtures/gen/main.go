// generates a shuffled synthetic calendar for fixture and stress testing
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

func main() {
	events := flag.Int("events", 10, "number of events to generate")
	pad := flag.Int("pad", 0, "bytes of description padding per event")
	flag.Parse()

	cal := ics.NewCalendar()
	cal.CalendarProperties = []ics.CalendarProperty{
		{BaseProperty: ics.BaseProperty{IANAToken: "VERSION", Value: "2.0"}},
		{BaseProperty: ics.BaseProperty{IANAToken: "PRODID", Value: "-//icsplit//fixture generator//EN"}},
		{BaseProperty: ics.BaseProperty{IANAToken: "CALSCALE", Value: "GREGORIAN"}},
	}

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < *events; i++ {
		event := cal.AddEvent(uuid.NewString() + "@icsplit")
		event.SetProperty(ics.ComponentPropertyDtStart, start.AddDate(0, 0, i).Format("20060102T150405")+"Z")
		event.SetSummary(fmt.Sprintf("Generated event %d", i+1))
		if *pad > 0 {
			event.SetProperty(ics.ComponentPropertyDescription, strings.Repeat("x", *pad))
		}
	}

	rand.Shuffle(len(cal.Components), func(i, j int) {
		cal.Components[i], cal.Components[j] = cal.Components[j], cal.Components[i]
	})

	fmt.Print(cal.Serialize())
}
