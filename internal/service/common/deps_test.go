//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// nopNotifier satisfies Notifier for construction tests.
type nopNotifier struct{}

func (nopNotifier) PlayAlert(context.Context) {}
func (nopNotifier) ShowInfo(string, string)   {}
func (nopNotifier) ShowError(string, error)   {}

// TestDeps_Normalize checks required collaborators and defaults.
func TestDeps_Normalize(t *testing.T) {
	t.Parallel()

	_, err := Deps{Notifier: nopNotifier{}}.Normalize()
	require.ErrorIs(t, err, errDispatcherRequired)

	_, err = Deps{Dispatcher: NewQueue()}.Normalize()
	require.ErrorIs(t, err, errNotifierRequired)

	d, err := Deps{Dispatcher: NewQueue(), Notifier: nopNotifier{}}.Normalize()
	require.NoError(t, err)
	require.NotNil(t, d.Clock)
	require.Equal(t, DefaultInterval, d.Interval)
}

// TestListeners_Notify checks ordering and nil filtering.
func TestListeners_Notify(t *testing.T) {
	t.Parallel()

	var (
		l   Listeners[int]
		got []int
	)

	l.Add(nil)
	l.Add(func(v int) { got = append(got, v) })
	l.Add(func(v int) { got = append(got, v*10) })

	l.Notify(3)
	require.Equal(t, []int{3, 30}, got)
}
