package splitter

import (
	"github.com/sirupsen/logrus"
)

type Opt func(*Splitter)

// MaxSize sets the maximum size of each output file in megabytes. The
// effective ceiling is 5% below this to absorb serialization overhead.
func MaxSize(mb float64) Opt {
	return func(s *Splitter) {
		s.maxSizeMB = mb
	}
}

func WithLogger(log logrus.FieldLogger) Opt {
	return func(s *Splitter) {
		s.log = log
	}
}
