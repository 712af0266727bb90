package instance

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeProcess is a static Process.
type fakeProcess struct {
	pid  int
	name string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) Executable() string { return p.name }

// TestMatch skips the current process and unrelated executables.
func TestMatch(t *testing.T) {
	t.Parallel()

	list := []Process{
		fakeProcess{pid: 1, name: "init"},
		fakeProcess{pid: 10, name: "alarm-clock"},
		fakeProcess{pid: 11, name: "alarm-clock"},
		fakeProcess{pid: 12, name: "alarm-clock-old"},
	}

	require.Equal(t, []int{11}, match(list, "alarm-clock", 10))
	require.Empty(t, match(list, "missing", 10))
}

// TestOthers_DoesNotListSelf checks the live process table never reports the test binary itself.
func TestOthers_DoesNotListSelf(t *testing.T) {
	t.Parallel()

	pids, err := Others()
	if err != nil {
		t.Skipf("process table unavailable: %v", err)
	}

	require.NotContains(t, pids, os.Getpid())
}
