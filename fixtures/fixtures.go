package fixtures

import (
	_ "embed"
)

var (
	//go:embed calExample.ics
	CalExample []byte
	//go:embed calExampleSorted.ics
	CalExampleSorted []byte
	//go:embed calEmpty.ics
	CalEmpty []byte
	//go:embed calTimezones.ics
	CalTimezones []byte
	//go:embed calTimezonesSorted.ics
	CalTimezonesSorted []byte
)
