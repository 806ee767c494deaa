package splitter

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsUnwrap(t *testing.T) {
	t.Parallel()

	malformed := MalformedCalendarError{Path: "cal.ics", Err: errors.New("unexpected end")}
	require.ErrorContains(t, malformed, `error parsing calendar "cal.ics": unexpected end`)
	require.ErrorIs(t, malformed, malformed.Err)

	write := WriteError{Path: "cal_part1.ics", Err: fs.ErrPermission}
	require.ErrorContains(t, write, `error writing "cal_part1.ics"`)
	require.ErrorIs(t, write, fs.ErrPermission)

	require.ErrorContains(t, InputNotFoundError{Path: "missing.ics"}, `input file "missing.ics" does not exist`)
}
