package chrono

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseSeconds covers accepted integers and both error kinds.
func TestParseSeconds(t *testing.T) {
	t.Parallel()

	valid := map[string]int{"0": 0, "5": 5, " 90 ": 90, "+3": 3, "007": 7}
	for in, want := range valid {
		got, err := ParseSeconds(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "1.5", "10s", "1e3", "--1"} {
		_, err := ParseSeconds(in)
		require.ErrorIs(t, err, ErrInvalidFormat, in)
	}

	for _, in := range []string{"-1", "-3600", "99999999999999999999999"} {
		_, err := ParseSeconds(in)
		require.ErrorIs(t, err, ErrInvalidRange, in)
	}
}
