package sound

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnsupportedOS indicates the current OS has no known alert command.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Command is a program and its arguments.
type Command struct {
	Name string
	Args []string
}

// Commands returns the alert commands for goos, in preference order:
//   - Windows: PowerShell SystemSounds.Exclamation
//   - macOS:   afplay with a system sound
//   - Linux:   canberra-gtk-play, then paplay with the freedesktop bell
func Commands(goos string) ([]Command, error) {
	switch strings.ToLower(goos) {
	case "windows":
		return []Command{{
			Name: "powershell.exe",
			Args: []string{"-NoProfile", "-NonInteractive", "-Command", "[System.Media.SystemSounds]::Exclamation.Play()"},
		}}, nil
	case "darwin":
		return []Command{{Name: "afplay", Args: []string{"/System/Library/Sounds/Glass.aiff"}}}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []Command{
			{Name: "canberra-gtk-play", Args: []string{"--id", "bell"}},
			{Name: "paplay", Args: []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}, nil
	default:
		return nil, fmt.Errorf("no alert command for %s: %w", goos, ErrUnsupportedOS)
	}
}

// Play runs the first alert command that succeeds on this OS.
// It waits for the tone so the caller can fall back on failure; call it
// off the UI goroutine.
func Play(ctx context.Context) error {
	commands, err := Commands(runtime.GOOS)
	if err != nil {
		return err
	}

	return run(ctx, commands)
}

// run tries commands in order and returns the joined failures if none succeeds.
func run(ctx context.Context, commands []Command) error {
	var errs []error

	for _, c := range commands {
		//nolint:gosec // Commands come from the fixed table above.
		err := exec.CommandContext(ctx, c.Name, c.Args...).Run()
		if err == nil {
			return nil
		}

		errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
	}

	return errors.Join(errs...)
}
