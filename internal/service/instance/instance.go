package instance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// Process is the subset of ps.Process used here.
type Process interface {
	Pid() int
	Executable() string
}

// Others returns the PIDs of running processes named like this executable,
// excluding the current process.
func Others() ([]int, error) {
	name, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}

	processList, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	list := make([]Process, 0, len(processList))
	for _, p := range processList {
		list = append(list, p)
	}

	return match(list, filepath.Base(name), os.Getpid()), nil
}

// match filters list by executable name, skipping self.
func match(list []Process, executable string, self int) []int {
	var pids []int

	for _, p := range list {
		if p.Pid() == self || p.Executable() != executable {
			continue
		}

		pids = append(pids, p.Pid())
	}

	return pids
}
